// Package gemini implements the advice client port against the Generative
// Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"slimcoach/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Client calls the generateContent endpoint of one model.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ domain.AdviceClient = (*Client)(nil)

// NewClient creates a Client. baseURL is configurable so tests can point it
// at a local server.
func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateAdvice sends the system instruction and user query and returns
// the first candidate's text. Rate-limit responses map to ErrAdviceQuota;
// every other failure wraps ErrAdviceUnavailable.
func (c *Client) GenerateAdvice(ctx context.Context, systemInstruction, query string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: api key not configured", domain.ErrAdviceUnavailable)
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: query}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %s", domain.ErrAdviceUnavailable, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrAdviceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrAdviceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", domain.ErrAdviceQuota
	}
	if resp.StatusCode != http.StatusOK {
		log.Errorf("gemini generateContent: unexpected status %d", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", domain.ErrAdviceUnavailable, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %s", domain.ErrAdviceUnavailable, err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %s", domain.ErrAdviceUnavailable, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrAdviceUnavailable)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
