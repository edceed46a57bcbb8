/*
Package handlers contains HTTP request handlers for the sentinelles API.

# Handler Types

Each handler is a struct holding the narrow store interface it needs:

  - ContactHandler: contact form messages (ContactStore)
  - SentinelleHandler: volunteer engagements (SentinelleStore)
  - RecolteHandler: field collection reports (RecolteStore)
  - LabTestHandler: lab measurements (LabTestStore)
  - HealthHandler: liveness and database reachability (Pinger)
  - StaticHandler: frontend files and the dashboard page

*db.Store satisfies every store interface:

	contactHandler := handlers.NewContactHandler(store)

# Writes

Create handlers decode the body through the forms package (JSON or form
encoded), stamp the server time where the record has one, insert a row
and answer 200 with:

	{"id": 1, "message": "Message envoyé avec succès"}

Invalid bodies get 400 with per-field details. Database failures are
logged and answered with a generic 500; the driver error stays in the log.

# Reads

List handlers return the whole table as a JSON array:

	GET /api/sentinelles → id DESC
	GET /api/recoltes    → id DESC
	GET /api/lab-tests   → date_test ASC

They are mounted behind middleware.BasicAuth by the router.
*/
package handlers
