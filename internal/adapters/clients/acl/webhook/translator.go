package webhook

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
)

// ErrNotObject is returned when a reply body is not a JSON object.
var ErrNotObject = errors.New("response body is not a JSON object")

// ToRequestDTO translates a domain request into the webhook payload.
func ToRequestDTO(req donation.Request) DonationRequestDTO {
	org := req.Organization()
	return DonationRequestDTO{
		OrganizationID:       org.ID,
		OrganizationName:     org.Name,
		AmountUSD:            json.Number(req.Amount().StringFixed(2)),
		Email:                req.Email(),
		OrganizationCategory: org.Category.String(),
	}
}

// DecodeResponse converts a reply body into a donation.Response.
//
// The body must be a JSON object; anything else is an error. Within the
// object, fields that are absent, null or of the wrong type fall back to
// their zero values: success is true only for a JSON true, and message,
// error and the donation id are taken only when they are strings. When
// both donation_id and donationId are non-empty strings, donation_id wins.
func DecodeResponse(body []byte) (donation.Response, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return donation.Response{}, err
	}

	id := stringField(fields, fieldDonationID)
	if id == "" {
		id = stringField(fields, fieldDonationIDAlt)
	}

	return donation.Response{
		Success:    boolField(fields, fieldSuccess),
		Message:    stringField(fields, fieldMessage),
		DonationID: id,
		Error:      stringField(fields, fieldError),
	}, nil
}

// RejectionMessage picks the text shown for a rejected donation: the error
// field, then the message field, then a synthesized line naming the status.
// Bodies that are empty or not JSON objects yield the synthesized line.
func RejectionMessage(status int, body []byte) string {
	if fields, err := decodeObject(body); err == nil {
		if msg := stringField(fields, fieldError); msg != "" {
			return msg
		}
		if msg := stringField(fields, fieldMessage); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("server returned status %d", status)
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	// A bare null unmarshals into a nil map without error.
	if fields == nil {
		return nil, ErrNotObject
	}
	return fields, nil
}

func stringField(fields map[string]json.RawMessage, name string) string {
	var s string
	if raw, ok := fields[name]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return ""
}

func boolField(fields map[string]json.RawMessage, name string) bool {
	var b bool
	if raw, ok := fields[name]; ok && json.Unmarshal(raw, &b) == nil {
		return b
	}
	return false
}
