package middleware

import "net/http"

// statusRecorder remembers what a handler sent through it: the status code,
// whether the response has started, and how many body bytes were written.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and drops later ones.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.started {
		return
	}
	sr.status, sr.started = code, true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.started = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
