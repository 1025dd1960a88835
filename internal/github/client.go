package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// Client is the HTTP wrapper for the GitHub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a GitHub client. A non-empty token is sent as a bearer
// token through an oauth2 transport.
func NewClient(ctx context.Context, baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := &http.Client{Timeout: DefaultTimeout}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, src)
		httpClient.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// get performs a GET and decodes the JSON body into out. It returns the
// response headers so callers can follow pagination.
func (c *Client) get(ctx context.Context, url string, out any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("Accept", MediaType)
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("failed to decode github response: %w", err)
	}
	return resp.Header, nil
}
