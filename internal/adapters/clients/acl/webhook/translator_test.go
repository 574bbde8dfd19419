package webhook

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

func TestToRequestDTO(t *testing.T) {
	t.Parallel()

	org := organization.Organization{
		ID:          "clean-water-fund",
		Name:        "Clean Water Fund",
		Category:    organization.CategoryEnvironment,
		Description: "not serialized",
	}
	req, err := donation.NewRequest(org, decimal.RequireFromString("25.5"), "donor@example.org")
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	body, err := json.Marshal(ToRequestDTO(req))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"organization_id":"clean-water-fund","organization_name":"Clean Water Fund",` +
		`"amount_usd":25.50,"email":"donor@example.org","organization_category":"environment"}`
	if string(body) != want {
		t.Errorf("payload =\n%s\nwant\n%s", body, want)
	}
}

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want donation.Response
	}{
		{
			name: "snake case id",
			body: `{"success": true, "donation_id": "d1"}`,
			want: donation.Response{Success: true, DonationID: "d1"},
		},
		{
			name: "camel case id",
			body: `{"success": true, "donationId": "d2", "message": "thanks"}`,
			want: donation.Response{Success: true, DonationID: "d2", Message: "thanks"},
		},
		{
			name: "snake case wins when both present",
			body: `{"success": true, "donation_id": "snake", "donationId": "camel"}`,
			want: donation.Response{Success: true, DonationID: "snake"},
		},
		{
			name: "empty snake case falls back to camel case",
			body: `{"success": true, "donation_id": "", "donationId": "camel"}`,
			want: donation.Response{Success: true, DonationID: "camel"},
		},
		{
			name: "non-string snake case falls back to camel case",
			body: `{"success": true, "donation_id": 42, "donationId": "camel"}`,
			want: donation.Response{Success: true, DonationID: "camel"},
		},
		{
			name: "absent success defaults to false",
			body: `{"message": "queued"}`,
			want: donation.Response{Message: "queued"},
		},
		{
			name: "string success is not true",
			body: `{"success": "true"}`,
			want: donation.Response{},
		},
		{
			name: "numeric success is not true",
			body: `{"success": 1}`,
			want: donation.Response{},
		},
		{
			name: "nulls take defaults",
			body: `{"success": null, "message": null, "donation_id": null, "error": null}`,
			want: donation.Response{},
		},
		{
			name: "wrong typed strings ignored",
			body: `{"success": false, "message": {"text": "x"}, "error": ["bad"]}`,
			want: donation.Response{},
		},
		{
			name: "error carried",
			body: `{"success": false, "error": "card declined"}`,
			want: donation.Response{Error: "card declined"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: donation.Response{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeResponse([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodeResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeResponse_RejectsNonObjects(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"not json", "", "null", "[]", `"ok"`, "true", `{"success": true`} {
		t.Run(body, func(t *testing.T) {
			t.Parallel()

			if _, err := DecodeResponse([]byte(body)); err == nil {
				t.Errorf("DecodeResponse(%q) error = nil, want error", body)
			}
		})
	}

	if _, err := DecodeResponse([]byte("null")); !errors.Is(err, ErrNotObject) {
		t.Errorf("DecodeResponse(null) error = %v, want ErrNotObject", err)
	}
}

func TestRejectionMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "error field", status: 402, body: `{"error": "card declined"}`, want: "card declined"},
		{name: "error beats message", status: 400, body: `{"error": "bad email", "message": "try again"}`, want: "bad email"},
		{name: "message fallback", status: 409, body: `{"message": "duplicate"}`, want: "duplicate"},
		{name: "empty error falls to message", status: 400, body: `{"error": "", "message": "m"}`, want: "m"},
		{name: "non-string error falls to message", status: 400, body: `{"error": {"code": 1}, "message": "m"}`, want: "m"},
		{name: "no usable field", status: 500, body: `{"detail": "boom"}`, want: "server returned status 500"},
		{name: "html body", status: 502, body: `<html>Bad Gateway</html>`, want: "server returned status 502"},
		{name: "empty body", status: 503, body: ``, want: "server returned status 503"},
		{name: "null body", status: 404, body: `null`, want: "server returned status 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RejectionMessage(tt.status, []byte(tt.body)); got != tt.want {
				t.Errorf("RejectionMessage(%d, %q) = %q, want %q", tt.status, tt.body, got, tt.want)
			}
		})
	}
}
