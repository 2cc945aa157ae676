package pubsub

import (
	"os"
	"strconv"
)

// LoadTracingConfigFromEnv reads EVENTS_TRACING_ENABLED,
// EVENTS_TRACING_SERVICE_NAME and EVENTS_TRACING_ZIPKIN_URL.
func LoadTracingConfigFromEnv() TracingConfig {
	config := DefaultTracingConfig()

	if enabledStr := os.Getenv("EVENTS_TRACING_ENABLED"); enabledStr != "" {
		if enabled, err := strconv.ParseBool(enabledStr); err == nil {
			config.Enabled = enabled
		}
	}
	if serviceName := os.Getenv("EVENTS_TRACING_SERVICE_NAME"); serviceName != "" {
		config.ServiceName = serviceName
	}
	if zipkinURL := os.Getenv("EVENTS_TRACING_ZIPKIN_URL"); zipkinURL != "" {
		config.ZipkinURL = zipkinURL
	}
	return config
}
