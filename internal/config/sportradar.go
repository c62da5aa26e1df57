package config

import "github.com/spf13/viper"

// SportradarConfig controls how we talk to the Sportradar NFL API.
type SportradarConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

func loadSportradar(src *viper.Viper) SportradarConfig {
	return SportradarConfig{
		BaseURL: envOrDefault(src, envSrBaseURL, defaultSrBaseURL),
		APIKey:  envOrDefault(src, envSrAPIKey, ""),
		Timeout: durationEnvOrDefault(src, envSrTimeout, defaultSrTimeout),
	}
}
