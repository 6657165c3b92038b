package config

// Значения по умолчанию
const (
	DefaultHTTPPort           = 8080
	DefaultServerTimeout      = 15
	DefaultIdleTimeout        = 60
	DefaultShutdownTimeout    = 10
	DefaultDBPort             = 5432
	DefaultMaxOpenConns       = 25
	DefaultMaxIdleConns       = 5
	DefaultConnMaxLifetime    = 300
	DefaultIntegrationTimeout = 5
	DefaultServiceName        = "smc-order-intake-service"
	DefaultDraftTTLHours      = 72
)
