package github

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/okadachi/portfolio-api/internal/errors"
)

func setupTestClient(t *testing.T) (*GitHubClient, *httptest.Server, func()) {
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))

	// Create test server
	server := httptest.NewServer(nil)
	client := NewGitHubClient(
		"test-token",
		logger,
		WithBaseURL(server.URL),
	)

	cleanup := func() {
		server.Close()
	}

	return client, server, cleanup
}

func TestGitHubClient_GetUser(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/users/octocat", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			w.Header().Set("X-RateLimit-Limit", "5000")
			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"login": "octocat",
				"name": "The Octocat",
				"bio": "Building things",
				"location": "San Francisco",
				"blog": "https://octocat.dev",
				"avatar_url": "https://avatars.githubusercontent.com/u/583231",
				"html_url": "https://github.com/octocat",
				"followers": 4000,
				"following": 9,
				"public_repos": 8
			}`))
		})

		profile, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", profile.Login)
		assert.Equal(t, "The Octocat", profile.Name)
		assert.Equal(t, "Building things", profile.Bio)
		assert.Equal(t, "https://github.com/octocat", profile.URL)
		assert.Equal(t, 4000, profile.Followers)
		assert.Equal(t, 8, profile.PublicRepos)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := client.GetUser(ctx, "")
		assert.Error(t, err)
		assert.True(t, apperrors.IsInvalidInput(err))
	})

	t.Run("user not found", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetUser(ctx, "octocat")
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestGitHubClient_GetUserRepositories(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))

			w.Header().Set("X-RateLimit-Limit", "5000")
			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[
				{
					"id": 1296269,
					"name": "qr-studio",
					"description": "QR code studio",
					"html_url": "https://github.com/octocat/qr-studio",
					"homepage": "https://qr.octocat.dev",
					"language": "TypeScript",
					"topics": ["react", "typescript"],
					"stargazers_count": 42,
					"forks_count": 7,
					"archived": false,
					"created_at": "2020-01-01T00:00:00Z",
					"updated_at": "2024-06-02T00:00:00Z"
				},
				{
					"id": 1296270,
					"name": "old-proj",
					"html_url": "https://github.com/octocat/old-proj",
					"stargazers_count": 3,
					"archived": true,
					"created_at": "2018-01-01T00:00:00Z",
					"updated_at": "2019-01-02T00:00:00Z"
				}
			]`))
		})

		repos, err := client.GetUserRepositories(ctx, "octocat")
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "qr-studio", repos[0].Name)
		assert.Equal(t, "https://github.com/octocat/qr-studio", repos[0].URL)
		assert.Equal(t, "https://qr.octocat.dev", repos[0].Homepage)
		assert.Equal(t, []string{"react", "typescript"}, repos[0].Topics)
		assert.Equal(t, 42, repos[0].StarsCount)
		assert.False(t, repos[0].Archived)
		assert.True(t, repos[1].Archived)
	})

	t.Run("empty list", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		})

		repos, err := client.GetUserRepositories(ctx, "octocat")
		require.NoError(t, err)
		assert.Empty(t, repos)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := client.GetUserRepositories(ctx, "")
		assert.Error(t, err)
		assert.True(t, apperrors.IsInvalidInput(err))
	})

	t.Run("malformed response", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`invalid json`))
		})

		_, err := client.GetUserRepositories(ctx, "octocat")
		assert.Error(t, err)
		assert.True(t, apperrors.IsMalformed(err))
	})

	t.Run("server error", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetUserRepositories(ctx, "octocat")
		assert.Error(t, err)
		assert.True(t, apperrors.IsHTTPStatus(err))
	})
}

func TestGitHubClient_GetProfileReadme(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/repos/octocat/octocat/readme", r.URL.Path)
			assert.Equal(t, "application/vnd.github.raw+json", r.Header.Get("Accept"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte("# Hi there\n\nI build things.\n"))
		})

		readme, err := client.GetProfileReadme(ctx, "octocat")
		require.NoError(t, err)
		assert.Contains(t, readme, "# Hi there")
	})

	t.Run("missing readme", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetProfileReadme(ctx, "octocat")
		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestGitHubClient_Unauthenticated(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"login": "octocat"}`))
	}))
	defer server.Close()

	client := NewGitHubClient("", logger, WithBaseURL(server.URL))

	profile, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", profile.Login)
}

func TestGitHubClient_RateLimitHandling(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("rate limit exceeded", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.GetUser(ctx, "octocat")
		assert.Error(t, err)
		assert.True(t, apperrors.IsRateLimit(err))

		// Verify rate limit info was captured from headers
		info := client.RateLimit()
		assert.Equal(t, 60, info.Limit)
		assert.Equal(t, 0, info.Remaining)
		assert.Equal(t, time.Unix(1234567890, 0), info.ResetTime)
	})

	t.Run("no retry on failure", func(t *testing.T) {
		attempts := 0
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetUser(ctx, "octocat")
		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestGitHubClient_ErrorHandling(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("network error", func(t *testing.T) {
		server.Close() // Force network error

		_, err := client.GetUser(ctx, "octocat")
		assert.Error(t, err)
		assert.True(t, apperrors.IsTransport(err))
	})
}
