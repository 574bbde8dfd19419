package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/donation-service/internal/domain"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
	"github.com/jsamuelsen11/donation-service/internal/ports"
)

// Compile-time check that OrganizationService implements ports.OrganizationService.
var _ ports.OrganizationService = (*OrganizationService)(nil)

// OrganizationService implements ports.OrganizationService on top of the
// catalog port.
type OrganizationService struct {
	catalog ports.OrganizationCatalog
	logger  *slog.Logger
}

// NewOrganizationService creates an OrganizationService. A nil logger
// discards logs.
func NewOrganizationService(catalog ports.OrganizationCatalog, logger *slog.Logger) *OrganizationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrganizationService{catalog: catalog, logger: logger}
}

// ListOrganizations returns organizations, optionally filtered by category.
func (s *OrganizationService) ListOrganizations(ctx context.Context, category string) ([]organization.Organization, error) {
	cat := organization.Category(category)
	if category != "" && !cat.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"category": fmt.Sprintf("invalid: %q", category),
		}}
	}

	orgs, err := s.catalog.List(ctx, cat)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list organizations",
			slog.String("operation", "ListOrganizations"),
			slog.String("category", category),
			slog.Any("error", err),
		)
		return nil, err
	}
	return orgs, nil
}

// GetOrganization returns a single organization by ID.
func (s *OrganizationService) GetOrganization(ctx context.Context, id string) (organization.Organization, error) {
	org, err := s.catalog.Get(ctx, id)
	if err != nil {
		return organization.Organization{}, err
	}
	return org, nil
}
