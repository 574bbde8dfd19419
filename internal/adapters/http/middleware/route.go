package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the chi route pattern matched for r, such as
// "/api/v1/organizations/{id}". It is empty outside a chi router and before
// routing has run, so callers read it after calling the next handler.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
