package acl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/donation-service/internal/adapters/clients/acl/webhook"
	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/donation-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.DonationClient = (*DonationClient)(nil)
	_ ports.HealthChecker  = (*DonationClient)(nil)
)

// DonationClient is the outbound adapter for the donation webhook. It
// implements [ports.DonationClient].
//
// Each Submit is one POST. Replies are classified into a [donation.Outcome]:
// 2xx with success true is Success; any other status, or a 2xx with success
// false, is RemoteRejection; a 2xx body that is not a JSON object and every
// transport error are TransportFailure.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, OpenTelemetry tracing, and health checking for every call.
type DonationClient struct {
	req    *Requester
	client *httpclient.Client
	logger *slog.Logger
}

// NewDonationClient creates a DonationClient that sends requests through the
// given [httpclient.Client].
func NewDonationClient(client *httpclient.Client, logger *slog.Logger) *DonationClient {
	return &DonationClient{
		req:    NewRequester(client, logger),
		client: client,
		logger: logger,
	}
}

// Submit posts req to endpointURL and classifies the reply. It never
// panics and never returns an error: every failure is an Outcome.
func (c *DonationClient) Submit(
	ctx context.Context,
	endpointURL string,
	req donation.Request,
	extraHeaders map[string]string,
) (outcome donation.Outcome) {
	start := time.Now()
	orgID := req.Organization().ID

	defer func() {
		if rec := recover(); rec != nil {
			c.logger.ErrorContext(ctx, "panic during donation submit",
				slog.String("operation", "Submit"),
				slog.String("organization_id", orgID),
				slog.Any("panic", rec),
			)
			outcome = donation.TransportFailed(MsgUnexpected)
		}
	}()

	reply, err := c.req.PostJSON(ctx, endpointURL, webhook.ToRequestDTO(req), extraHeaders)
	if err != nil {
		outcome = donation.TransportFailed(TransportMessage(err))
		c.logger.WarnContext(ctx, "donation submit transport failure",
			slog.String("operation", "Submit"),
			slog.String("organization_id", orgID),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		return outcome
	}

	outcome = Classify(reply)
	c.logger.InfoContext(ctx, "donation submit completed",
		slog.String("operation", "Submit"),
		slog.String("organization_id", orgID),
		slog.String("outcome", outcome.Kind().String()),
		slog.Int("status", reply.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)
	return outcome
}

// Classify turns a webhook reply into an Outcome. Only 200-299 is the
// success range, and within it only a JSON object with success true.
func Classify(reply Reply) donation.Outcome {
	if reply.StatusCode < http.StatusOK || reply.StatusCode >= http.StatusMultipleChoices {
		return donation.Rejected(webhook.RejectionMessage(reply.StatusCode, reply.Body), reply.StatusCode)
	}

	resp, err := webhook.DecodeResponse(reply.Body)
	if err != nil {
		return donation.TransportFailed(MsgUnreadable)
	}
	if !resp.Success {
		return donation.Rejected(webhook.RejectionMessage(reply.StatusCode, reply.Body), reply.StatusCode)
	}
	return donation.Succeeded(resp)
}
