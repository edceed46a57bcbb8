package router

import (
	"net/http"
	"time"

	"github.com/cbet/sentinelles/auth"
	"github.com/cbet/sentinelles/cliparse"
	"github.com/cbet/sentinelles/db"
	"github.com/cbet/sentinelles/handlers"
	"github.com/cbet/sentinelles/middleware"
)

func NewRouter(store *db.Store, verifier auth.Verifier, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	lab := middleware.BasicAuth(verifier, cfg.LabRealm)

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(store)
	sentinelleHandler := handlers.NewSentinelleHandler(store)
	recolteHandler := handlers.NewRecolteHandler(store)
	labTestHandler := handlers.NewLabTestHandler(store)
	healthHandler := handlers.NewHealthHandler(store, time.Now())
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Public forms
	mux.HandleFunc("POST /api/contact", middleware.WithLogging(contactHandler.Create))
	mux.HandleFunc("POST /api/sentinelles", middleware.WithLogging(sentinelleHandler.Create))
	mux.HandleFunc("POST /api/recoltes", middleware.WithLogging(recolteHandler.Create))

	// Lab dashboard (Basic auth)
	mux.HandleFunc("GET /api/sentinelles", middleware.WithLogging(lab(sentinelleHandler.List)))
	mux.HandleFunc("GET /api/recoltes", middleware.WithLogging(lab(recolteHandler.List)))
	mux.HandleFunc("POST /api/lab-tests", middleware.WithLogging(lab(labTestHandler.Create)))
	mux.HandleFunc("GET /api/lab-tests", middleware.WithLogging(lab(labTestHandler.List)))
	mux.HandleFunc("GET /dashboard.html", middleware.WithLogging(lab(staticHandler.Dashboard)))

	// Frontend
	mux.HandleFunc("GET /{$}", staticHandler.Index)
	mux.HandleFunc("GET /", staticHandler.Files)

	var h http.Handler = mux
	h = middleware.LimitBody(cfg.MaxBodyBytes)(h)
	h = middleware.CORS(h)
	h = middleware.Recover(h)
	h = middleware.RequestID(h)
	return h
}
