package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
)

const msgInternalError = "internal server error"

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the error with the full stack trace
// and returns an RFC 9457 500 response. The panic value never reaches the
// client; the detail quotes the request ID instead so a donor can report it.
// If the response headers have already been written, only the log entry is
// emitted.
//
// Recovery runs before RequestID, so the ID is read back from the response
// header that RequestID sets.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}

				reqID := sr.Header().Get(headerRequestID)
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", reqID),
				)

				if sr.started {
					return
				}
				detail := msgInternalError
				if reqID != "" {
					detail = fmt.Sprintf("%s (reference %s)", msgInternalError, reqID)
				}
				dto.WriteProblem(sr, r, http.StatusInternalServerError, detail)
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
