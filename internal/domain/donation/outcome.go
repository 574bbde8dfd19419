package donation

import (
	"fmt"

	"github.com/jsamuelsen11/donation-service/internal/domain"
)

// Kind tags the variant an Outcome holds.
type Kind int

const (
	KindSuccess Kind = iota + 1
	KindRemoteRejection
	KindTransportFailure
)

// String implements fmt.Stringer. The values double as metric labels.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindRemoteRejection:
		return "remote_rejection"
	case KindTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Outcome is what a submission resolves to: exactly one of Success,
// RemoteRejection or TransportFailure. Build it with Succeeded, Rejected or
// TransportFailed.
type Outcome struct {
	kind       Kind
	response   Response
	message    string
	statusCode int
}

// Succeeded wraps a response whose Success flag is true.
func Succeeded(resp Response) Outcome {
	return Outcome{kind: KindSuccess, response: resp, message: resp.Message}
}

// Rejected records that the server was reached and refused the donation.
// statusCode is zero when unknown.
func Rejected(message string, statusCode int) Outcome {
	return Outcome{kind: KindRemoteRejection, message: message, statusCode: statusCode}
}

// TransportFailed records that no usable reply was obtained. message must
// already be safe to show to a donor.
func TransportFailed(message string) Outcome {
	return Outcome{kind: KindTransportFailure, message: message}
}

// Kind returns the variant.
func (o Outcome) Kind() Kind { return o.kind }

// Response returns the decoded reply. Only set for KindSuccess.
func (o Outcome) Response() Response { return o.response }

// Message returns the display-ready text for the outcome.
func (o Outcome) Message() string { return o.message }

// StatusCode returns the HTTP status of a rejection, or zero when unknown.
func (o Outcome) StatusCode() int { return o.statusCode }

// Err converts failure outcomes into errors for layers that work with
// errors.Is. It returns nil for KindSuccess.
func (o Outcome) Err() error {
	switch o.kind {
	case KindSuccess:
		return nil
	case KindRemoteRejection:
		return &RejectedError{Message: o.message, StatusCode: o.statusCode}
	default:
		return &TransportError{Message: o.message}
	}
}

// RejectedError is a remote rejection in error form. It matches
// domain.ErrRejected.
type RejectedError struct {
	Message    string
	StatusCode int
}

func (e *RejectedError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("donation rejected: %s", e.Message)
	}
	return fmt.Sprintf("donation rejected (status %d): %s", e.StatusCode, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return domain.ErrRejected
}

// TransportError is a transport failure in error form. It matches
// domain.ErrUnavailable.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return "donation service unreachable: " + e.Message
}

func (e *TransportError) Unwrap() error {
	return domain.ErrUnavailable
}
