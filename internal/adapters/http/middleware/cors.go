package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/donation-service/internal/platform/config"
)

// CORS returns middleware that answers browser preflight requests for the
// configured origins. The request and correlation ID headers are exposed so
// the form can show them alongside a failure.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders: []string{headerRequestID, headerCorrelationID},
		MaxAge:         cfg.MaxAge,
	})
}
