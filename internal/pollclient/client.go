// Package pollclient implements the consumer side of the status protocol:
// read the job snapshot at a fixed interval until it reaches a terminal
// state or the attempt budget runs out. Giving up is purely client-side; the
// job keeps whatever state it has.
package pollclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
	"github.com/SagarThalkiya/multi-agent-document-analysis/pkg/docapi"
)

// ErrTimeout reports that the attempt budget ran out before the job settled.
var ErrTimeout = errors.New("poll attempts exhausted before the job reached a terminal state")

// ErrNotFound reports an unknown job id.
var ErrNotFound = errors.New("job not found")

type Client struct {
	baseURL     string
	httpClient  *http.Client
	interval    time.Duration
	maxAttempts int
}

func New(baseURL string, interval time.Duration, maxAttempts int) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Poll reads the job status repeatedly until it is terminal, returning that
// terminal snapshot. After maxAttempts non-terminal reads it returns
// ErrTimeout. Cancelling ctx stops the loop between attempts.
func (c *Client) Poll(ctx context.Context, jobID string) (*docapi.ResultsResponse, error) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		snapshot, err := c.Fetch(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job.Status(snapshot.Status).IsTerminal() {
			return snapshot, nil
		}
		if attempt == c.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
	return nil, ErrTimeout
}

// Fetch performs a single point-in-time status read.
func (c *Client) Fetch(ctx context.Context, jobID string) (*docapi.ResultsResponse, error) {
	url := fmt.Sprintf("%s/api/v1/results/%s", c.baseURL, jobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("status read failed: %s", resp.Status)
	}

	var snapshot docapi.ResultsResponse
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &snapshot, nil
}
