package config

import "time"

const (
	envFileName = ".env"

	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envSrBaseURL    = "SPORTRADAR_BASE_URL"
	envSrAPIKey     = "X_API_KEY"
	envSrTimeout    = "SPORTRADAR_TIMEOUT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	defaultPort        = "8000"
	defaultProvider    = ProviderSportradar
	defaultMetricsPort = "9090"
	defaultServiceName = "fantasy-football-service"
	defaultCORSOrigins = "*"
	defaultSrBaseURL   = "https://api.sportradar.com/nfl/official/trial/v7/en"
	defaultSrTimeout   = 10 * Duration(time.Second)
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderSportradar = "sportradar"
	ProviderFixture    = "fixture"
)
