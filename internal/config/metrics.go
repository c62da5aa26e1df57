package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(src *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(src, envMetricsOn, true),
		Port:         envOrDefault(src, envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(src, envOtelEndpoint, ""),
		ServiceName:  envOrDefault(src, envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(src, envOtelInsecure, true),
	}
}
