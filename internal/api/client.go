package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
)

// TokenSource yields the current bearer token, read fresh on every call so a
// logout mid-flight affects the next request, not the one in the air.
type TokenSource interface {
	Token() string
}

// Client is the typed surface over the shop backend. One method per
// (resource, operation) pair; no local cache mutation happens here — callers
// apply results to their own state.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

func NewClient(baseURL string, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// SetHTTPClient swaps the transport, used by tests.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string, auth bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// doJSON runs the request and decodes a JSON body into out (skipped when out
// is nil). fallback is the operation-specific error message used when the
// backend's error body carries no detail.
func (c *Client) doJSON(req *http.Request, out any, fallback string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.NetworkErr(fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFrom(resp, fallback)
	}
	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.NetworkErr(fallback, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperr.Wrap(fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err))
	}
	return nil
}

// errorFrom extracts a structured error message ({"detail": ...} or
// {"message": ...}) from a non-success response, else uses the fallback.
func (c *Client) errorFrom(resp *http.Response, fallback string) error {
	msg := fallback
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Detail != "" {
			msg = body.Detail
		} else if body.Message != "" {
			msg = body.Message
		}
	}

	c.log.Debug("request failed", "status", resp.StatusCode, "path", resp.Request.URL.Path, "message", msg)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return apperr.NotAuthorizedErr(msg)
	}
	return apperr.RequestFailedErr(msg)
}

func jsonBody(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return bytes.NewReader(raw), nil
}
