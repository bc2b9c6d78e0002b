package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cv-generator/internal/model"
)

// Client talks to the external generate-cv endpoint. The endpoint receives
// the whole aggregate as JSON and answers with a JSON result; its internals
// are someone else's problem. One request in flight, no retries.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{url: url, http: &http.Client{Timeout: 30 * time.Second}}
}

// Configured reports whether an endpoint URL was provided.
func (c *Client) Configured() bool { return c.url != "" }

// Generate posts the aggregate and decodes the JSON response. A non-2xx
// status is surfaced as an error carrying the status and response body.
func (c *Client) Generate(ctx context.Context, cv *model.CVData) (map[string]interface{}, error) {
	body, err := json.Marshal(cv)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("generate-cv endpoint returned %d: %s", resp.StatusCode, string(respBody))
	}

	var out map[string]interface{}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode generate-cv response: %w", err)
	}
	return out, nil
}
