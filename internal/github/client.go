package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/okadachi/portfolio-api/internal/errors"
	"github.com/okadachi/portfolio-api/internal/models"
)

// RateLimitInfo holds information about GitHub API rate limits
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetTime time.Time
}

// GitHubClient represents a client for interacting with the GitHub API.
// It only covers the read-only endpoints the portfolio needs and works
// unauthenticated; a token raises the rate limit but is never required.
type GitHubClient struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *logrus.Logger

	mu            sync.Mutex
	rateLimitInfo RateLimitInfo
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*GitHubClient)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *GitHubClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *GitHubClient) {
		c.client.Timeout = timeout
	}
}

// NewGitHubClient creates a new GitHub client with the given token and options
func NewGitHubClient(token string, logger *logrus.Logger, opts ...ClientOption) *GitHubClient {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = 30 * time.Second

	client := &GitHubClient{
		client:  httpClient,
		baseURL: "https://api.github.com",
		token:   token,
		logger:  logger,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// updateRateLimitInfo updates the rate limit information from response headers
func (c *GitHubClient) updateRateLimitInfo(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit := resp.Header.Get("X-RateLimit-Limit"); limit != "" {
		c.rateLimitInfo.Limit, _ = strconv.Atoi(limit)
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.rateLimitInfo.Remaining, _ = strconv.Atoi(remaining)
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimitInfo.ResetTime = time.Unix(resetTime, 0)
		}
	}
}

// RateLimit returns the most recently observed rate limit state
func (c *GitHubClient) RateLimit() RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimitInfo
}

// doRaw performs a single request against the GitHub API and returns the raw
// response body. Failed requests are not retried; the caller keeps whatever
// data it already has and the next refresh cycle tries again.
func (c *GitHubClient) doRaw(req *http.Request) ([]byte, error) {
	c.logger.WithField("url", req.URL.String()).Debug("Requesting GitHub API")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("request to %s failed", req.URL.Path), err)
	}
	defer resp.Body.Close()

	c.updateRateLimitInfo(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("failed to read response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("resource not found: %s", req.URL.Path),
			errors.NewStatusError(resp.StatusCode, req.URL.String()),
		)
	case resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		info := c.RateLimit()
		return nil, errors.New(errors.ErrRateLimit, "rate limit exceeded",
			errors.NewRateLimitError(info.ResetTime, info.Limit, info.Remaining))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewHTTPStatusError(string(body),
			errors.NewStatusError(resp.StatusCode, req.URL.String()))
	}

	return body, nil
}

// doRequest performs a request and decodes the JSON response into result
func (c *GitHubClient) doRequest(req *http.Request, result interface{}) error {
	body, err := c.doRaw(req)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return errors.NewMalformedError("failed to decode response", err)
		}
	}

	return nil
}

// GetUser gets a user's public profile from GitHub
func (c *GitHubClient) GetUser(ctx context.Context, username string) (*models.Profile, error) {
	if username == "" {
		return nil, errors.NewValidationError("username cannot be empty", nil)
	}

	url := fmt.Sprintf("%s/users/%s", c.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var profile models.Profile
	if err := c.doRequest(req, &profile); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("profile fetch failed", errors.NewUserNotFoundError(username))
		}
		return nil, err
	}

	return &profile, nil
}

// GetUserRepositories gets a user's public repositories, most recently updated
// first. A single page of 100 covers the portfolio; anything older is stale
// enough that it would be filtered out of the views anyway.
func (c *GitHubClient) GetUserRepositories(ctx context.Context, username string) ([]*models.Repository, error) {
	if username == "" {
		return nil, errors.NewValidationError("username cannot be empty", nil)
	}

	baseURL := fmt.Sprintf("%s/users/%s/repos", c.baseURL, username)
	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("per_page", "100")

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var repos []*models.Repository
	if err := c.doRequest(req, &repos); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"username": username,
		"count":    len(repos),
	}).Debug("Fetched repositories from GitHub API")

	return repos, nil
}

// GetProfileReadme gets the raw Markdown of the user's profile README, the
// README of the repository named after the user. Not every profile has one;
// a missing README surfaces as a not found error.
func (c *GitHubClient) GetProfileReadme(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", errors.NewValidationError("username cannot be empty", nil)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, username, username)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.raw+json")

	body, err := c.doRaw(req)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
