package app

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/donation-service/internal/domain"
	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/donation-service/internal/ports"
)

// Compile-time check that DonationService implements ports.DonationService.
var _ ports.DonationService = (*DonationService)(nil)

// Endpoint is where donations are posted and the headers sent with each
// post (typically the webhook auth header).
type Endpoint struct {
	URL     string
	Headers map[string]string
}

// DonationService implements ports.DonationService. It resolves the
// organization, runs the submission gate, builds the request and hands it to
// the DonationClient port. Nothing is sent when the gate fails.
type DonationService struct {
	catalog  ports.OrganizationCatalog
	client   ports.DonationClient
	endpoint Endpoint
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewDonationService creates a DonationService. A nil metrics disables the
// submission counter; a nil logger discards logs.
func NewDonationService(
	catalog ports.OrganizationCatalog,
	client ports.DonationClient,
	endpoint Endpoint,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *DonationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DonationService{
		catalog:  catalog,
		client:   client,
		endpoint: endpoint,
		metrics:  metrics,
		logger:   logger,
	}
}

// Donate submits one donation. See ports.DonationService.
func (s *DonationService) Donate(ctx context.Context, organizationID, amount, email string) (donation.Outcome, error) {
	s.logger.InfoContext(ctx, "submitting donation",
		slog.String("organization_id", organizationID),
	)

	org, err := s.catalog.Get(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to resolve organization",
				slog.String("operation", "Donate"),
				slog.String("organization_id", organizationID),
				slog.Any("error", err),
			)
		}
		return donation.Outcome{}, err
	}

	check := donation.Check(amount, email)
	if !check.CanSubmit() {
		return donation.Outcome{}, &domain.ValidationError{Fields: check.Errors}
	}

	req, err := donation.NewRequest(org, check.Amount, email)
	if err != nil {
		// The gate passed, so this is a bug in the gate or the builder.
		s.logger.ErrorContext(ctx, "donation request violates invariants after gate passed",
			slog.String("operation", "Donate"),
			slog.String("organization_id", organizationID),
			slog.Any("error", err),
		)
		return donation.Outcome{}, err
	}

	outcome := s.client.Submit(ctx, s.endpoint.URL, req, maps.Clone(s.endpoint.Headers))
	s.record(ctx, organizationID, outcome)

	return outcome, nil
}

// Check runs the submission gate.
func (s *DonationService) Check(_ context.Context, amount, email string) donation.Eligibility {
	return donation.Check(amount, email)
}

// Presets returns the fixed amount menu.
func (s *DonationService) Presets(_ context.Context) []decimal.Decimal {
	return donation.Presets()
}

// record logs the outcome and counts it. Neither can change the outcome.
func (s *DonationService) record(ctx context.Context, organizationID string, outcome donation.Outcome) {
	attrs := []any{
		slog.String("operation", "Donate"),
		slog.String("organization_id", organizationID),
		slog.String("outcome", outcome.Kind().String()),
	}

	switch outcome.Kind() {
	case donation.KindSuccess:
		s.logger.InfoContext(ctx, "donation accepted",
			append(attrs, slog.String("donation_id", outcome.Response().DonationID))...)
	case donation.KindRemoteRejection:
		s.logger.WarnContext(ctx, "donation rejected",
			append(attrs, slog.Int("status", outcome.StatusCode()), slog.String("reason", outcome.Message()))...)
	default:
		s.logger.ErrorContext(ctx, "donation transport failure",
			append(attrs, slog.String("reason", outcome.Message()))...)
	}

	if s.metrics != nil {
		s.metrics.DonationSubmissionTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrOutcome.String(outcome.Kind().String()),
			telemetry.AttrOrganizationID.String(organizationID),
		))
	}
}
