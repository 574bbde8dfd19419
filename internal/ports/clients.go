package ports

import (
	"context"

	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

// DonationClient defines the client port for the donation webhook.
// Implemented by the ACL adapter; called by the application layer.
type DonationClient interface {
	// Submit posts req to endpointURL exactly once and classifies the reply.
	// extraHeaders are merged over the JSON Content-Type/Accept defaults.
	// Every failure is folded into the returned Outcome; Submit never
	// returns an error and never retries.
	Submit(ctx context.Context, endpointURL string, req donation.Request, extraHeaders map[string]string) donation.Outcome
}

// OrganizationCatalog defines the read port for organizations that can
// receive donations.
type OrganizationCatalog interface {
	// List returns organizations ordered by name. An empty category lists
	// every organization.
	List(ctx context.Context, category organization.Category) ([]organization.Organization, error)

	// Get returns a single organization by ID.
	// Returns domain.ErrNotFound if the organization does not exist.
	Get(ctx context.Context, id string) (organization.Organization, error)
}
