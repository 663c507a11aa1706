package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/partyfavorphoto/intake/internal/api/handler"
	"github.com/partyfavorphoto/intake/internal/api/middleware"
	"github.com/partyfavorphoto/intake/internal/pricing"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Intake   handler.IntakeService
	Pricing  *pricing.Table
	DBPinger handler.DBPinger
	Version  string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	pricingHandler := handler.NewPricingHandler(deps.Pricing)
	inquiryHandler := handler.NewInquiryHandler(deps.Intake)

	r.Route("/api", func(r chi.Router) {
		r.Get("/packages", pricingHandler.List)

		r.Route("/inquiries", func(r chi.Router) {
			r.Post("/", inquiryHandler.Submit)
			r.Get("/", inquiryHandler.List)
			r.Get("/{id}", inquiryHandler.GetByID)
			r.Post("/{id}/accept", inquiryHandler.Accept)
			r.Post("/{id}/decline", inquiryHandler.Decline)
			r.Get("/{id}/communications", inquiryHandler.Communications)
		})
	})

	return r
}
