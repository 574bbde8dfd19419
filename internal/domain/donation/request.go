package donation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/donation-service/internal/domain"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

// Field names used in per-field validation messages.
const (
	FieldAmount = "amount"
	FieldEmail  = "email"
)

// msgInvalidEmail is the per-field message for a failed email predicate.
const msgInvalidEmail = "must be a valid email address"

// Request is one donation attempt. It is built fresh for every submission
// and cannot be changed after NewRequest returns.
type Request struct {
	organization organization.Organization
	amount       decimal.Decimal
	email        string
}

// NewRequest builds a Request from inputs that already passed the gate.
// A *domain.ValidationError here means a caller skipped CanSubmit; it is a
// programming error rather than something to show the donor.
func NewRequest(org organization.Organization, amount decimal.Decimal, email string) (Request, error) {
	fields := make(map[string]string)

	var verr *domain.ValidationError
	if err := org.Validate(); errors.As(err, &verr) {
		for k, v := range verr.Fields {
			fields[k] = v
		}
	}
	if !amount.IsPositive() {
		fields[FieldAmount] = ErrAmountNotPositive.Error()
	} else if !amount.Equal(amount.Truncate(MaxFractionDigits)) {
		fields[FieldAmount] = ErrAmountPrecision.Error()
	}
	if !ValidateEmail(email) {
		fields[FieldEmail] = msgInvalidEmail
	}

	if len(fields) > 0 {
		return Request{}, &domain.ValidationError{Fields: fields}
	}

	return Request{organization: org, amount: amount, email: email}, nil
}

// Organization returns the recipient.
func (r Request) Organization() organization.Organization { return r.organization }

// Amount returns the donation amount in USD.
func (r Request) Amount() decimal.Decimal { return r.amount }

// Email returns the donor email.
func (r Request) Email() string { return r.email }

// Eligibility is the result of running the submission gate with per-field
// reasons. Amount is the parsed value and is only meaningful when the
// amount field has no error.
type Eligibility struct {
	Amount decimal.Decimal
	Errors map[string]string
}

// CanSubmit reports whether both fields passed.
func (e Eligibility) CanSubmit() bool {
	return len(e.Errors) == 0
}

// Check runs the submission gate and explains every failing field. It makes
// no network call and is cheap enough to run on each keystroke.
func Check(amount, email string) Eligibility {
	result := Eligibility{Errors: map[string]string{}}

	parsed, err := ValidateAmount(amount)
	if err != nil {
		result.Errors[FieldAmount] = err.Error()
	} else {
		result.Amount = parsed
	}
	if !ValidateEmail(email) {
		result.Errors[FieldEmail] = msgInvalidEmail
	}

	return result
}

// CanSubmit is the single gate for the submit action: true iff amount parses
// to a positive value and email satisfies the email predicate.
func CanSubmit(amount, email string) bool {
	return Check(amount, email).CanSubmit()
}
