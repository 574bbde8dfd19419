// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

// Currency is the implied currency of every amount.
const Currency = "USD"

// OrganizationResponse represents a single organization in HTTP responses.
type OrganizationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// OrganizationListResponse represents a list of organizations in HTTP responses.
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Count         int                    `json:"count"`
}

// ToOrganizationResponse converts a domain Organization to an HTTP response DTO.
func ToOrganizationResponse(o *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Category:    o.Category.String(),
		Description: o.Description,
		Location:    o.Location,
	}
}

// ToOrganizationListResponse converts a slice of domain organizations to an
// HTTP list response DTO.
func ToOrganizationListResponse(orgs []organization.Organization) OrganizationListResponse {
	items := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		items[i] = ToOrganizationResponse(&orgs[i])
	}
	return OrganizationListResponse{
		Organizations: items,
		Count:         len(items),
	}
}

// DonationResponse represents an accepted donation.
type DonationResponse struct {
	Outcome    string `json:"outcome"`
	DonationID string `json:"donation_id,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ToDonationResponse converts a successful outcome to an HTTP response DTO.
func ToDonationResponse(o donation.Outcome) DonationResponse {
	return DonationResponse{
		Outcome:    o.Kind().String(),
		DonationID: o.Response().DonationID,
		Message:    o.Message(),
	}
}

// CheckResponse reports whether the submit action is enabled for the
// given form contents. Amount is the normalized amount when it is valid.
type CheckResponse struct {
	CanSubmit bool              `json:"can_submit"`
	Amount    json.Number       `json:"amount,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// ToCheckResponse converts a donation eligibility result to an HTTP response DTO.
func ToCheckResponse(e donation.Eligibility) CheckResponse {
	resp := CheckResponse{
		CanSubmit: e.CanSubmit(),
		Errors:    e.Errors,
	}
	if _, bad := e.Errors[donation.FieldAmount]; !bad && e.Amount.IsPositive() {
		resp.Amount = json.Number(e.Amount.StringFixed(donation.MaxFractionDigits))
	}
	return resp
}

// PresetsResponse lists the quick-pick amounts.
type PresetsResponse struct {
	Currency string        `json:"currency"`
	Presets  []json.Number `json:"presets"`
}

// ToPresetsResponse converts preset amounts to an HTTP response DTO.
func ToPresetsResponse(presets []decimal.Decimal) PresetsResponse {
	items := make([]json.Number, len(presets))
	for i, p := range presets {
		items[i] = json.Number(p.String())
	}
	return PresetsResponse{Currency: Currency, Presets: items}
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks maps each dependency to "ok" or its failure text and is omitted
// for liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
