package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"jdbc-bridge/internal/domain"
)

// APIError is a non-2xx response from the bridge API.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: HTTP %d", e.HTTPStatus)
}

// Client is a minimal HTTP client for the bridge API. Host is resolved at
// call time so flag parsing can finish first.
type Client struct {
	Host func() string
	HTTP *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Host()+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		var envelope struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateResource registers a new resource.
func (c *Client) CreateResource(ctx context.Context, req domain.CreateResourceRequest) (*domain.Resource, error) {
	var res domain.Resource
	if err := c.do(ctx, http.MethodPost, "/v1/resources", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListResources returns all registered resources.
func (c *Client) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var all []domain.Resource
	if err := c.do(ctx, http.MethodGet, "/v1/resources", nil, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetResource returns one resource by name.
func (c *Client) GetResource(ctx context.Context, name string) (*domain.Resource, error) {
	var res domain.Resource
	if err := c.do(ctx, http.MethodGet, "/v1/resources/"+url.PathEscape(name), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteResource removes a resource by name.
func (c *Client) DeleteResource(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/v1/resources/"+url.PathEscape(name), nil, nil)
}

// ResolveDescriptor resolves an external-table descriptor.
func (c *Client) ResolveDescriptor(ctx context.Context, req domain.DescriptorRequest) (*domain.ConnectionDescriptor, error) {
	var desc domain.ConnectionDescriptor
	if err := c.do(ctx, http.MethodPost, "/v1/descriptors", req, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}
