package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantStatus  int
		wantBytes   int64
		wantStarted bool
	}{
		{
			name: "created donation",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, `{"outcome":"success",`)
				_, _ = io.WriteString(w, `"donation_id":"d1"}`)
			},
			wantStatus:  http.StatusCreated,
			wantBytes:   int64(len(`{"outcome":"success","donation_id":"d1"}`)),
			wantStarted: true,
		},
		{
			name: "implicit 200 on first write",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"can_submit":true}`)
			},
			wantStatus:  http.StatusOK,
			wantBytes:   int64(len(`{"can_submit":true}`)),
			wantStarted: true,
		},
		{
			name: "second status is dropped",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantStarted: true,
		},
		{
			name:       "handler writes nothing",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := recordStatus(rec)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", strings.NewReader(`{}`))
			tt.handler(sr, req)

			if sr.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", sr.status, tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if sr.started != tt.wantStarted {
				t.Errorf("started = %v, want %v", sr.started, tt.wantStarted)
			}
			if sr.started && rec.Code != tt.wantStatus {
				t.Errorf("client saw %d, want %d", rec.Code, tt.wantStatus)
			}
			if int64(rec.Body.Len()) != tt.wantBytes {
				t.Errorf("client body = %d bytes, want %d", rec.Body.Len(), tt.wantBytes)
			}
		})
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if recordStatus(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
