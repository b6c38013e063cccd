// Package api is the typed HTTP client for the platform's admin API.
// Request/response payloads are JSON; failures are mapped onto the sentinel
// errors in internal/common so callers can branch with errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/logging"
)

const defaultTimeout = 15 * time.Second

// rest holds the low-level request plumbing shared by the authenticated
// client and the plain auth endpoint group.
type rest struct {
	baseURL string
	hc      *http.Client
}

// do issues one JSON request. in (if non-nil) is marshalled as the body;
// out (if non-nil) receives the decoded response body. HTTP errors are
// returned as sentinel-wrapped errors.
func (r *rest) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := r.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := r.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiErrorBody is the error envelope the admin API returns.
type apiErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// responseError maps an HTTP failure onto the sentinel taxonomy, keeping
// the server-provided message when one is present.
func responseError(resp *http.Response) error {
	var sentinel error
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		sentinel = common.ErrInvalidArgument
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = common.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = common.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = common.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = common.ErrConflict
	case resp.StatusCode >= 500:
		sentinel = common.ErrUnavailable
	default:
		sentinel = common.ErrInternal
	}

	var body apiErrorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("%s: %w", body.Error.Message, sentinel)
	}
	return fmt.Errorf("http %d: %w", resp.StatusCode, sentinel)
}

// Client is the authenticated admin API client. Its transport attaches the
// bearer token and performs the single refresh-and-replay on authorization
// failures.
type Client struct {
	rest
	log logging.Logger
}

// New constructs a Client rooted at baseURL whose requests are authorized
// through tokens.
func New(baseURL string, tokens TokenSource, log logging.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		rest: rest{
			baseURL: strings.TrimRight(baseURL, "/"),
			hc: &http.Client{
				Timeout:   timeout,
				Transport: &AuthTransport{Tokens: tokens},
			},
		},
		log: log,
	}
}
