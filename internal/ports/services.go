package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

// DonationService defines the service port for the donation flow.
// Implemented by the application layer; called by inbound adapters (handlers).
type DonationService interface {
	// Donate runs the submission gate, builds the request and submits it.
	// Returns domain.ErrNotFound for an unknown organization and a
	// *domain.ValidationError when the gate fails; in both cases nothing is
	// sent. Otherwise the Outcome of the single submission is returned with
	// a nil error.
	Donate(ctx context.Context, organizationID, amount, email string) (donation.Outcome, error)

	// Check runs the submission gate without side effects.
	Check(ctx context.Context, amount, email string) donation.Eligibility

	// Presets returns the fixed amount menu.
	Presets(ctx context.Context) []decimal.Decimal
}

// OrganizationService defines the service port for browsing organizations.
type OrganizationService interface {
	// ListOrganizations returns organizations, optionally filtered by category.
	// Returns domain.ErrValidation for an unknown category.
	ListOrganizations(ctx context.Context, category string) ([]organization.Organization, error)

	// GetOrganization returns a single organization by ID.
	// Returns domain.ErrNotFound if the organization does not exist.
	GetOrganization(ctx context.Context, id string) (organization.Organization, error)
}
