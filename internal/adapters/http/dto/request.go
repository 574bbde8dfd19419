package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/donation-service/internal/domain"
	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
)

const (
	msgAmountOrPreset  = "is required unless preset is set"
	msgPresetExclusive = "must be empty when preset is set"
	msgUnknownPreset   = "must be one of the preset amounts"
)

// DonationRequest represents the JSON body for submitting a donation.
// Exactly one of Amount (custom text) and Preset must be given.
type DonationRequest struct {
	OrganizationID string `json:"organization_id"`
	Amount         string `json:"amount,omitempty"`
	Preset         *int64 `json:"preset,omitempty"`
	Email          string `json:"email"`
}

// Validate checks the request shape. Amount and email contents are left to
// the donation gate so both layers report the same reasons.
// Returns a *domain.ValidationError if any checks fail.
func (r *DonationRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.OrganizationID, validation.Required.Error(domain.MsgRequired)),
		validation.Field(&r.Amount,
			validation.When(r.Preset == nil, validation.Required.Error(msgAmountOrPreset)),
			validation.When(r.Preset != nil, validation.Empty.Error(msgPresetExclusive)),
		),
	))
}

// Selection resolves the amount fields into a donation.AmountSelection.
func (r *DonationRequest) Selection() (donation.AmountSelection, error) {
	var sel donation.AmountSelection
	if r.Preset == nil {
		sel.SetCustom(r.Amount)
		return sel, nil
	}
	if err := sel.SelectPreset(decimal.NewFromInt(*r.Preset)); err != nil {
		return sel, &domain.ValidationError{Fields: map[string]string{"preset": msgUnknownPreset}}
	}
	return sel, nil
}

// CheckRequest represents the JSON body of a submit-eligibility check. It
// carries the form fields as typed; any content is acceptable.
type CheckRequest struct {
	Amount string `json:"amount"`
	Email  string `json:"email"`
}

// toValidationError converts ozzo validation errors keyed by JSON field name
// into a *domain.ValidationError. Other errors pass through unchanged.
func toValidationError(err error) error {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	fields := make(map[string]string, len(errs))
	for field, ferr := range errs {
		fields[field] = ferr.Error()
	}
	return &domain.ValidationError{Fields: fields}
}
