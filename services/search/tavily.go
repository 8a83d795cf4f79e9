package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TavilyClient calls the Tavily search REST API.
type TavilyClient struct {
	BaseURL    string
	APIKey     string
	MaxResults int
	HTTPClient *http.Client
}

func NewTavilyClient(apiKey, baseURL string, maxResults int) *TavilyClient {
	if baseURL == "" {
		baseURL = "https://api.tavily.com"
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	return &TavilyClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		MaxResults: maxResults,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tavilyRequest struct {
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

func (c *TavilyClient) Search(ctx context.Context, query string) (Result, error) {
	body, err := json.Marshal(tavilyRequest{Query: query, MaxResults: c.MaxResults, SearchDepth: "basic"})
	if err != nil {
		return Result{}, fmt.Errorf("tavily: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("tavily: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("tavily: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Result{}, fmt.Errorf("tavily: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("tavily: decode response: %w", err)
	}
	// The hits live under "results"; anything else is classified as is.
	if m, ok := payload.(map[string]any); ok {
		if results, ok := m["results"].([]any); ok && len(results) > 0 {
			return Classify(results), nil
		}
	}
	return Classify(payload), nil
}
