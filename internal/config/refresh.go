package config

import (
	"strconv"
	"time"
)

// RefreshConfig holds refresh scheduling configuration
type RefreshConfig struct {
	Interval         time.Duration
	FeaturedProjects []string
	MaxOtherProjects int
}

// DefaultRefreshConfig returns the default refresh configuration
func DefaultRefreshConfig() *RefreshConfig {
	return &RefreshConfig{
		Interval:         time.Minute * 5,
		FeaturedProjects: []string{"qr-studio", "smart-brain", "react-music-player", "dapp-chat"},
		MaxOtherProjects: 6,
	}
}

// LoadRefresh reads refresh configuration from the environment on top of the
// defaults
func LoadRefresh() (*RefreshConfig, error) {
	refresh := DefaultRefreshConfig()

	interval, err := strconv.Atoi(getEnv("REFRESH_INTERVAL_MINUTES", "5"))
	if err != nil {
		return nil, err
	}
	refresh.Interval = time.Duration(interval) * time.Minute

	if featured := getEnv("FEATURED_PROJECTS", ""); featured != "" {
		refresh.FeaturedProjects = splitList(featured)
	}

	maxOther, err := strconv.Atoi(getEnv("MAX_OTHER_PROJECTS", "6"))
	if err != nil {
		return nil, err
	}
	refresh.MaxOtherProjects = maxOther

	return refresh, nil
}
