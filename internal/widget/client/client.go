// Package client fetches review pages from the widget review API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

var tracer = otel.Tracer("github.com/betona1/cafe24-staff-review/internal/widget/client")

// ErrTransport is matched by every failure to obtain a usable review page.
var ErrTransport = errors.New("client: transport failure")

// TransportError describes a failed fetch. Status is zero when no response
// was received.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("client: review api returned %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("client: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the review API of one widget server.
type Client struct {
	base   string
	client HTTPClient
}

// New constructs a Client for the server at baseURL.
func New(baseURL string, client HTTPClient) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("client: base URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("client: parse base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("client: base URL %q must be absolute", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{base: trimmed, client: client}, nil
}

// Fetch retrieves one page of reviews. Failures are never retried.
func (c *Client) Fetch(ctx context.Context, q review.Query) (_ *review.Page, err error) {
	ctx, span := tracer.Start(ctx, "client.Fetch")
	span.SetAttributes(
		attribute.String("review.product_id", q.ProductID),
		attribute.Int("review.page", q.Page),
		attribute.Int("review.per_page", q.PerPage),
		attribute.String("review.sort", string(q.Sort)),
		attribute.Bool("review.photo_only", q.PhotoOnly),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(q), nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp)
	}

	var payload review.Page
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("decode reviews: %w", err)}
	}
	if err := payload.Validate(); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}
	return &payload, nil
}

func (c *Client) resolve(q review.Query) string {
	return c.base + q.Path() + "?" + q.Values().Encode()
}

func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("%s: %s", payload.Error, payload.Message)}
		}
		return &TransportError{Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(body)))}
	}
	return &TransportError{Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
}
