// Package webhook implements the Anti-Corruption Layer translators for the
// donation webhook: the outbound payload and tolerant decoding of replies.
package webhook

import "encoding/json"

// DonationRequestDTO matches the webhook's request body. AmountUSD is a JSON
// number carrying the exact decimal text, so 25.5 is never sent as
// 25.499999.
type DonationRequestDTO struct {
	OrganizationID       string      `json:"organization_id"`
	OrganizationName     string      `json:"organization_name"`
	AmountUSD            json.Number `json:"amount_usd"`
	Email                string      `json:"email"`
	OrganizationCategory string      `json:"organization_category"`
}

// Reply field names. The donation id arrives under either spelling.
const (
	fieldSuccess       = "success"
	fieldMessage       = "message"
	fieldError         = "error"
	fieldDonationID    = "donation_id"
	fieldDonationIDAlt = "donationId"
)
