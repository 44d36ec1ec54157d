// Package messages fetches the member message collection from the remote
// message source and normalizes its payload.
package messages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"memberqa-backend/internal/models"
)

// DefaultTimeout bounds a single fetch of the message collection.
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of the source response is read.
const maxBodyBytes = 32 << 20

var (
	// ErrRetrieval is wrapped by every failure to obtain messages.
	ErrRetrieval = errors.New("message retrieval failed")
	// ErrUpstream means the source was unreachable, timed out or answered with a non-2xx status.
	ErrUpstream = fmt.Errorf("%w: message source unavailable", ErrRetrieval)
	// ErrUnexpectedPayload means the source answered with a shape we cannot read messages from.
	ErrUnexpectedPayload = fmt.Errorf("%w: unexpected messages response format", ErrRetrieval)
)

// Client retrieves messages over HTTP. It never retries and never caches.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the message source at url. A zero timeout
// means DefaultTimeout.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("messages"),
	}
}

// FetchMessages downloads and decodes the full message collection.
func (c *Client) FetchMessages(ctx context.Context) ([]models.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("message source request failed", zap.String("url", c.url), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("message source returned error status",
			zap.String("url", c.url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUpstream, err)
	}

	msgs, err := DecodePayload(body)
	if err != nil {
		c.logger.Warn("message source payload not understood", zap.Int("bytes", len(body)), zap.Error(err))
		return nil, err
	}

	c.logger.Debug("fetched messages", zap.Int("count", len(msgs)))
	return msgs, nil
}
