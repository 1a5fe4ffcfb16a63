package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmaskell/ledgerview-backend/internal/handlers"
	"github.com/dmaskell/ledgerview-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	am := middleware.NewMiddleware(deps.Firebase)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(am.FirebaseAuth)

	rh := handlers.NewReportHandlers(deps)

	r.Mount("/reports", rh.ReportRoutes())
	return r
}
