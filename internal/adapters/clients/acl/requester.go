package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/donation-service/internal/platform/httpclient"
)

// maxReplyBodySize limits how much of a reply body is read.
const maxReplyBodySize = 1 << 20 // 1 MB

// Reply is a downstream answer reduced to what classification needs.
type Reply struct {
	StatusCode int
	Body       []byte
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// JSON marshaling, header defaults, execution via httpclient.Client, and
// bounded reading and cleanup of the response body.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// PostJSON sends reqBody as JSON to url in a single POST. Content-Type and
// Accept default to application/json; headers are applied over the
// defaults, replacing same-named ones and keeping the rest.
//
// Any reply that arrives is returned with a nil error whatever its status.
// An error means no usable reply was obtained.
func (r *Requester) PostJSON(ctx context.Context, url string, reqBody any, headers map[string]string) (Reply, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return Reply{}, fmt.Errorf("marshaling POST body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("creating POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for name, value := range headers {
		if name == "" {
			continue
		}
		req.Header.Set(name, value)
	}

	return r.execute(req)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request and reads the reply body. It ensures resp.Body
// is always closed.
func (r *Requester) execute(req *http.Request) (Reply, error) {
	ctx := req.Context()

	// httpclient.Do returns both resp and err for statuses the breaker counts
	// as failures. The reply is still the answer to classify.
	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		r.logger.WarnContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.Any("error", err),
		)
		return Reply{}, fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer r.closeBody(ctx, resp)

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxReplyBodySize))
	if readErr != nil {
		return Reply{}, fmt.Errorf("reading reply from %s: %w", req.URL.Redacted(), readErr)
	}

	if err != nil {
		r.logger.DebugContext(ctx, "downstream failure status",
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
	}

	return Reply{StatusCode: resp.StatusCode, Body: body}, nil
}
