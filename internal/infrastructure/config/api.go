package config

import "time"

// APIConfig holds SpaceTraders API client configuration
type APIConfig struct {
	// Base URL for SpaceTraders API
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Account token, used only to register agents
	AccountToken string `mapstructure:"account_token"`

	// Agent token for every other command
	AgentToken string `mapstructure:"agent_token"`

	// Request timeout applied to the CLI's HTTP client
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`
}
