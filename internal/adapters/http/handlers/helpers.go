package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/donation-service/internal/domain"
)

// maxJSONBodyBytes bounds inbound request bodies. Donation payloads are a
// few hundred bytes.
const maxJSONBodyBytes = 64 << 10

// writeJSON encodes v before touching w, so an encoding failure becomes a
// 500 problem instead of a truncated body behind a success status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		dto.WriteProblem(w, r, http.StatusInternalServerError, "response could not be encoded")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// decodeJSONBody reads a JSON body into dst. On failure it writes a 400
// problem naming what was wrong with the body and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": bodyProblem(err)},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that check their own fields.
type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// bodyProblem describes a decode failure without echoing the payload.
func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &tooLarge):
		return "request body is too large"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return "field " + typeErr.Field + " has the wrong type"
	default:
		return "invalid JSON"
	}
}
