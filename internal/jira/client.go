package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/Tiliavir/tt/internal/config"
)

// ErrNotConfigured is returned when the Jira environment variables are
// incomplete. Commands print it and carry on; it is never fatal.
var ErrNotConfigured = errors.New(
	"missing Jira configuration: set JIRA_API_HOST, JIRA_API_USER and JIRA_API_TOKEN")

var issueKeyPattern = regexp.MustCompile(`\w+-\d+`)

// IsIssueKey reports whether an activity names a tracker issue (e.g. abc-123).
func IsIssueKey(activity string) bool {
	return issueKeyPattern.MatchString(activity)
}

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps the Jira REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	user       string
	token      string
	basicAuth  bool
	logger     zerolog.Logger
}

// NewClient builds a Jira client from the environment configuration.
// With JIRA_API_AUTH=bearer the token is sent as a personal access token
// through an oauth2 static token source; otherwise basic auth is used.
func NewClient(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Client, error) {
	if cfg.JiraHost == "" || cfg.JiraUser == "" || cfg.JiraToken == "" {
		return nil, ErrNotConfigured
	}

	c := &Client{
		baseURL:   strings.TrimSuffix(cfg.JiraHost, "/"),
		user:      cfg.JiraUser,
		token:     cfg.JiraToken,
		basicAuth: cfg.JiraAuth != "bearer",
		logger:    logger.With().Str("component", "jira").Logger(),
	}

	if c.basicAuth {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.JiraToken})
		hc := oauth2.NewClient(ctx, ts)
		hc.Timeout = 30 * time.Second
		c.httpClient = hc
	}
	return c, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// BaseURL returns the base URL of the Jira instance.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes an authenticated API request.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.basicAuth {
		cred := base64.StdEncoding.EncodeToString([]byte(c.user + ":" + c.token))
		req.Header.Set("Authorization", "Basic "+cred)
	}

	c.logger.Debug().Str("method", method).Str("url", url).Msg("jira request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("jira API error (status %d): %s", resp.StatusCode, respBody)
	}

	return resp, nil
}

// decodeResponse reads and decodes a JSON response.
func decodeResponse(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
