/*
Package router defines HTTP routes for the sentinelles API.

# Route Registration

NewRouter creates the configured handler with all endpoints:

	handler := router.NewRouter(store, verifier, cfg)

# Endpoints

Health:

	GET /health

Public forms:

	POST /api/contact     - Contact message
	POST /api/sentinelles - Volunteer engagement
	POST /api/recoltes    - Field collection report

Lab dashboard (Basic auth, realm cfg.LabRealm):

	GET  /api/sentinelles - All sentinelles, id DESC
	GET  /api/recoltes    - All recoltes, id DESC
	POST /api/lab-tests   - Record a lab test
	GET  /api/lab-tests   - All lab tests, date_test ASC
	GET  /dashboard.html  - Dashboard page

Frontend (public):

	GET /  - index.html
	GET /* - files under cfg.StaticDir

# Handler Initialization

The router creates handler instances with dependency injection:

	contactHandler := handlers.NewContactHandler(store)
	sentinelleHandler := handlers.NewSentinelleHandler(store)

The store handle and the credential verifier are built in main and passed
in; nothing is global.
*/
package router
