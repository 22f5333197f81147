package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resortfront/internal/config"
	"resortfront/internal/metrics"
	"resortfront/internal/utils/logger"
)

// Client is the typed client for the remote booking REST API. Every
// authenticated call carries the caller's bearer token; the client holds
// no credential of its own.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

func NewClient(cfg config.UpstreamConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        logger.New("upstream"),
	}
}

func (c *Client) doJSON(ctx context.Context, op, method, path, token string, reqBody, respBody any) (int, error) {
	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return 0, err
		}
	}

	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncUpstreamRequest(op, "error")
		return 0, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		metrics.IncUpstreamRequest(op, "error")
		return resp.StatusCode, readErr
	}

	// Surface the upstream error body for non-2xx, so call sites can log
	// the real cause instead of a bare status code.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.IncUpstreamRequest(op, "error")
		return resp.StatusCode, &APIError{Status: resp.StatusCode, Body: string(b)}
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			metrics.IncUpstreamRequest(op, "error")
			return resp.StatusCode, fmt.Errorf("decode %s response failed: %w body=%s", op, err, string(b))
		}
	}

	metrics.IncUpstreamRequest(op, "ok")
	return resp.StatusCode, nil
}
