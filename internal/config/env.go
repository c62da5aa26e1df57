package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// newSource layers the process environment over an optional dotenv file.
// A missing or unreadable file is not an error; the environment alone is used.
func newSource(envFile string) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		_ = v.ReadInConfig()
	}
	return v
}

func envOrDefault(src *viper.Viper, key, defaultValue string) string {
	val := strings.TrimSpace(src.GetString(key))
	if val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(src *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(src.GetString(key))
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func boolEnvOrDefault(src *viper.Viper, key string, defaultValue bool) bool {
	raw := strings.TrimSpace(src.GetString(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

func listEnvOrDefault(src *viper.Viper, key, defaultValue string) []string {
	raw := envOrDefault(src, key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
