package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRateLimited is returned when the outbound rate limiter cannot admit a
// request before the context ends.
var ErrRateLimited = errors.New("rate limit wait aborted")

// StatusError reports a downstream response whose status counts as a
// breaker failure. The response itself is still returned by Client.Do.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// isFailureStatus reports whether a status signals downstream trouble:
// server errors (5xx) and 429 Too Many Requests.
func isFailureStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
