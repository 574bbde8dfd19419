// Package acl implements the Anti-Corruption Layer between the donation
// webhook and the domain. Wire translation lives in acl/webhook; outcome
// classification and donor-safe failure messages live here.
package acl

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/jsamuelsen11/donation-service/internal/platform/httpclient"
)

// Donor-facing transport failure messages. They never include hostnames,
// addresses or error chains.
const (
	MsgUnavailable  = "The donation service is temporarily unavailable. Please try again shortly."
	MsgTimeout      = "The donation service did not respond in time. Please try again."
	MsgCanceled     = "The donation request was cancelled before it completed."
	MsgUnresolvable = "The donation service could not be found. Please check your connection."
	MsgRefused      = "The donation service refused the connection. Please try again later."
	MsgRateLimited  = "Too many donation attempts right now. Please wait a moment and try again."
	MsgUnreadable   = "The donation service sent a response that could not be read."
	MsgUnreachable  = "Could not reach the donation service. Please check your connection."
	MsgUnexpected   = "Something went wrong while submitting the donation."
)

// TransportMessage maps a transport error to a donor-safe message derived
// from its cause.
func TransportMessage(err error) string {
	var dnsErr *net.DNSError
	var netErr net.Error

	switch {
	case err == nil:
		return MsgUnexpected
	case httpclient.IsCircuitOpen(err):
		return MsgUnavailable
	case errors.Is(err, httpclient.ErrRateLimited):
		return MsgRateLimited
	case errors.Is(err, context.Canceled):
		return MsgCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.As(err, &dnsErr):
		return MsgUnresolvable
	case errors.Is(err, syscall.ECONNREFUSED):
		return MsgRefused
	case errors.As(err, &netErr) && netErr.Timeout():
		return MsgTimeout
	default:
		return MsgUnreachable
	}
}
