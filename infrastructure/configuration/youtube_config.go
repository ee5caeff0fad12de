package configuration

import (
	"os"
	"strings"
)

// DefaultYouTubeBaseURL is the root the generated client resolves "youtube/v3/..." against
const DefaultYouTubeBaseURL = "https://youtube.googleapis.com/"

func initYouTube(c *Config) {
	c.YouTube.APIKey = getConfigValue(c.YouTube.APIKey, "YOUTUBE_API_KEY", "")
	c.YouTube.BaseURL = getConfigValue(c.YouTube.BaseURL, "YOUTUBE_BASE_URL", DefaultYouTubeBaseURL)
	if c.YouTube.WindowDays == 0 {
		c.YouTube.WindowDays = DefaultWindowDays
	}
	if c.YouTube.SearchMaxResults == 0 {
		c.YouTube.SearchMaxResults = DefaultSearchMaxResults
	}
	if c.YouTube.TopN == 0 {
		c.YouTube.TopN = DefaultTopN
	}
}

// HasAPIKey reports whether a usable key is present
func (y YouTube) HasAPIKey() bool {
	return y.APIKey != ""
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Otherwise use config value if set and not a placeholder
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
