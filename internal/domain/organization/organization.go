// Package organization defines the organization a donation is made to.
package organization

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/donation-service/internal/domain"
)

// Organization is an immutable reference to a recipient of donations. Only
// ID, Name and Category travel in a donation request; Description and
// Location are display data for the profile page.
type Organization struct {
	ID          string
	Name        string
	Category    Category
	Description string
	Location    string
}

// Validate checks that the fields serialized into a donation request are
// present. Returns a *domain.ValidationError or nil.
func (o Organization) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.ID) == "" {
		fields["organization_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(o.Name) == "" {
		fields["organization_name"] = domain.MsgRequired
	}
	if !o.Category.IsValid() {
		fields["organization_category"] = fmt.Sprintf("invalid: %q", o.Category)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
