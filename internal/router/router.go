package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/hsbooks/internal/handlers"
	"github.com/GregMSThompson/hsbooks/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	lh := handlers.NewLedgerHandlers(deps)
	vh := handlers.NewViewHandlers(deps)
	dh := handlers.NewDataHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		lh.LedgerRoutes(r)
		dh.DataRoutes(r)
		r.Mount("/dashboard", vh.DashboardRoutes())
		r.Mount("/reports", vh.ReportRoutes())
		r.Get("/calendar", vh.Calendar)
	})
	return r
}
