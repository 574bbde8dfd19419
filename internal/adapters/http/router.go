// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	donationHandler *handlers.DonationHandler,
	organizationHandler *handlers.OrganizationHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/organizations", organizationHandler.ListOrganizations)
		r.Get("/organizations/{id}", organizationHandler.GetOrganization)

		r.Get("/donations/presets", donationHandler.Presets)
		r.Post("/donations/check", donationHandler.Check)
		r.Post("/donations", donationHandler.Donate)
	})

	return r
}
