package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmikhailov/authkeeper/internal/client/models"
	"github.com/dmikhailov/authkeeper/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient is the HTTP/JSON implementation of Client, talking to the
// identity service's /auth endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient constructs an HTTPClient against the given base URL, e.g.
// "http://127.0.0.1:8000". The timeout bounds every single request.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response without token: %w", ErrUnavailable)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) error {
	path := "/auth/verify-email?" + url.Values{"token": {token}}.Encode()
	return c.do(ctx, http.MethodPost, path, "", nil, nil)
}

func (c *HTTPClient) WhoAmI(ctx context.Context, token string) (*models.Identity, error) {
	var identity models.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Close satisfies Client. The underlying http.Client keeps no resources that
// outlive idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do executes one request/response round trip: marshals reqBody (if any),
// sets the bearer token (if any), tags the request with an X-Request-Id,
// maps failures, and unmarshals a 2xx body into out (if any).
func (c *HTTPClient) do(ctx context.Context, method, path, token string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "identity request failed", "method", method, "path", req.URL.Path, "req_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
		c.log.Warn(ctx, "identity request rejected", "method", method, "path", req.URL.Path, "req_id", requestID, "status", resp.StatusCode)
		return apiErr
	}

	c.log.Debug(ctx, "identity request ok", "method", method, "path", req.URL.Path, "req_id", requestID, "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readDetail extracts the "detail" message from an error body. A missing or
// malformed body yields "", letting callers fall back to a generic message.
func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
