// Package modelserver talks to the sidecar process that hosts the fine-tuned
// seq2seq model and exposes it over HTTP.
package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/obx0x3/empathy-dementia/pkg/ai"
)

const inferPath = "/infer"

var _ ai.Generator = (*Client)(nil)

type inferRequest struct {
	Input     string `json:"input"`
	MaxLength int    `json:"max_length,omitempty"`
}

type inferResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// WaitReady polls the sidecar until it answers or the timeout elapses.
func (c *Client) WaitReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+inferPath, nil)
		if err != nil {
			return fmt.Errorf("failed to build readiness request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("model server not ready within %v", timeout)
		case <-ticker.C:
		}
	}
}

func (c *Client) Generate(ctx context.Context, input string, maxLength int) (string, error) {
	start := time.Now()

	jsonData, err := json.Marshal(inferRequest{Input: input, MaxLength: maxLength})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+inferPath, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var response inferResponse
	if err := json.Unmarshal(body, &response); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Error != "" {
		return "", fmt.Errorf("server error: %s", response.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	c.logger.Debug("inference completed", "duration", time.Since(start), "input_length", len(input))

	return response.Output, nil
}
