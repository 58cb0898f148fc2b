package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
)

// Client talks to a running schedsim server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// do sends body as JSON and decodes a successful response into out.
func (c *Client) do(method, path string, body, out any) error {
	url := c.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.Logger.Debug("HTTP request", "method", method, "url", url)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.Logger.Debug("HTTP response", "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr responses.ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.Error == "" {
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

func (c *Client) Schedule(algorithm string, request requests.ScheduleRequests) (*responses.ScheduleResponse, error) {
	var out responses.ScheduleResponse
	if err := c.do(http.MethodPost, "/api/v1/schedule/"+algorithm, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Compare(request requests.ScheduleRequests) (*responses.CompareResponse, error) {
	var out responses.CompareResponse
	if err := c.do(http.MethodPost, "/api/v1/compare", request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
