package config

import "time"

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	Token      string
	APIBaseURL string
	Timeout    time.Duration
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL: "https://api.github.com",
		Timeout:    30 * time.Second,
	}
}

// LoadGitHub reads GitHub configuration from the environment on top of the
// defaults. The token is optional; without one the client runs
// unauthenticated against the public API.
func LoadGitHub() *GitHubConfig {
	github := DefaultGitHubConfig()
	github.Token = getEnv("GITHUB_TOKEN", "")
	github.APIBaseURL = getEnv("GITHUB_API_URL", github.APIBaseURL)
	return github
}
