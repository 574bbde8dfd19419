package donation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/donation-service/internal/domain"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

func testOrganization() organization.Organization {
	return organization.Organization{
		ID:       "clean-water-fund",
		Name:     "Clean Water Fund",
		Category: organization.CategoryEnvironment,
	}
}

// requireValidationField asserts err wraps domain.ErrValidation and names
// the given field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	amount := decimal.RequireFromString("25.50")
	req, err := NewRequest(testOrganization(), amount, "donor@example.org")
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	if req.Organization() != testOrganization() {
		t.Errorf("Organization() = %+v, want %+v", req.Organization(), testOrganization())
	}
	if !req.Amount().Equal(amount) {
		t.Errorf("Amount() = %s, want %s", req.Amount(), amount)
	}
	if req.Email() != "donor@example.org" {
		t.Errorf("Email() = %q, want %q", req.Email(), "donor@example.org")
	}
}

func TestNewRequest_Invariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		org    organization.Organization
		amount string
		email  string
		field  string
	}{
		{name: "zero amount", org: testOrganization(), amount: "0", email: "a@b.co", field: FieldAmount},
		{name: "negative amount", org: testOrganization(), amount: "-1", email: "a@b.co", field: FieldAmount},
		{name: "sub-cent amount", org: testOrganization(), amount: "1.005", email: "a@b.co", field: FieldAmount},
		{name: "bad email", org: testOrganization(), amount: "5", email: "bad", field: FieldEmail},
		{name: "empty email", org: testOrganization(), amount: "5", email: "", field: FieldEmail},
		{name: "missing organization", org: organization.Organization{}, amount: "5", email: "a@b.co", field: "organization_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRequest(tt.org, decimal.RequireFromString(tt.amount), tt.email)
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestCanSubmit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		email  string
		want   bool
	}{
		{name: "both valid", amount: "25", email: "x@y.com", want: true},
		{name: "custom cents", amount: "12.34", email: "x@y.com", want: true},
		{name: "zero amount", amount: "0", email: "x@y.com", want: false},
		{name: "bad email", amount: "25", email: "bad", want: false},
		{name: "empty amount", amount: "", email: "x@y.com", want: false},
		{name: "empty email", amount: "25", email: "", want: false},
		{name: "both invalid", amount: "abc", email: "bad", want: false},
		{name: "too many decimals", amount: "25.999", email: "x@y.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanSubmit(tt.amount, tt.email); got != tt.want {
				t.Errorf("CanSubmit(%q, %q) = %v, want %v", tt.amount, tt.email, got, tt.want)
			}
		})
	}
}

func TestCheck_ReportsEveryField(t *testing.T) {
	t.Parallel()

	got := Check("0", "bad")
	if got.CanSubmit() {
		t.Fatal("CanSubmit() = true, want false")
	}
	if got.Errors[FieldAmount] != ErrAmountNotPositive.Error() {
		t.Errorf("Errors[amount] = %q, want %q", got.Errors[FieldAmount], ErrAmountNotPositive.Error())
	}
	if got.Errors[FieldEmail] == "" {
		t.Error("Errors[email] is empty, want a reason")
	}

	ok := Check(" 10.5 ", "a@b.co")
	if !ok.CanSubmit() {
		t.Fatalf("CanSubmit() = false, errors %v", ok.Errors)
	}
	if !ok.Amount.Equal(decimal.RequireFromString("10.5")) {
		t.Errorf("Amount = %s, want 10.5", ok.Amount)
	}
}
