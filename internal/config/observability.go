package config

// OtelConfig holds OpenTelemetry trace export configuration.
//
// Traces are exported via OTLP HTTP to a local collector or agent.
// An empty Endpoint disables tracing entirely.
type OtelConfig struct {
	// Endpoint is the OTLP HTTP endpoint (host:port, e.g. "localhost:4318")
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
	// ServiceName is the service name attached to exported spans (default: concierge)
	ServiceName string `mapstructure:"service_name" json:"service_name"`
	// Environment is the deployment environment tag (default: dev)
	Environment string `mapstructure:"environment" json:"environment"`
}
