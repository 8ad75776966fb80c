package config

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error. debug logs every API request.
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Debug reports whether request logging is on
func (c LoggingConfig) Debug() bool {
	return c.Level == "debug"
}
