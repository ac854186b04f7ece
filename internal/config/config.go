package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port           string
	GitHubUsername string
	AllowedOrigins []string
	GitHub         *GitHubConfig
	Refresh        *RefreshConfig
}

func Load() (*Config, error) {
	username := getEnv("GITHUB_USERNAME", "")
	if username == "" {
		return nil, fmt.Errorf("GITHUB_USERNAME is required")
	}

	refresh, err := LoadRefresh()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GitHubUsername: username,
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		GitHub:         LoadGitHub(),
		Refresh:        refresh,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
