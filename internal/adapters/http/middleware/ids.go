package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/donation-service/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIDLength caps client-supplied request and correlation IDs.
	maxIDLength = 128
)

// Context keys are local to this package. The httpclient package keeps its
// own copies so that outbound calls pick the IDs up without importing
// middleware.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx for handlers and log enrichment, and for
// the X-Request-ID header on outbound webhook calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "" when none is stored.
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, requestIDKey{})
}

// WithCorrelationID stores id in ctx for handlers and log enrichment, and
// for the X-Correlation-ID header on outbound webhook calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is
// stored.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, correlationIDKey{})
}

// RequestID assigns every request an X-Request-ID. A usable client value is
// kept; anything else is replaced by a random UUID.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID assigns every request an X-Correlation-ID, falling back to
// the request ID. It must be registered after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

// propagateID reads header from the request, substitutes fallback(r) when
// the value is not usable, stores the result in the request context and
// echoes it on the response.
func propagateID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !usableID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

func idFrom(ctx context.Context, key any) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// usableID reports whether a client-supplied ID may be echoed into logs and
// outbound headers: non-empty, at most maxIDLength bytes of printable ASCII.
func usableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
