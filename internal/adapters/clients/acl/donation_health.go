package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client] used for tracing and metrics.
func (c *DonationClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the webhook's availability from the circuit breaker
// state. No network call is made, so an idle service never probes the
// webhook with fake donations.
//
// This reports downstream status, not service readiness: the inbound API
// keeps answering (with TransportFailure outcomes) while the webhook is
// failing.
func (c *DonationClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
