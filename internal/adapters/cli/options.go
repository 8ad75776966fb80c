package cli

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-sdk/pkg/api"
	"github.com/andrescamacho/spacetraders-sdk/pkg/metrics"
)

var errNoAgentToken = errors.New("no agent token: set AGENT_TOKEN, api.agent_token or --token")

// rootOptions is the state shared by every subcommand of one invocation
type rootOptions struct {
	configPath string
	baseURL    string
	token      string
	verbose    bool

	cfg           *config.Config
	logger        *log.Logger
	httpClient    *http.Client
	metricsServer *metricsServer
}

// setup loads configuration and builds the HTTP client every command shares
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	o.cfg = cfg
	o.logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)

	var transport http.RoundTripper = http.DefaultTransport

	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		collector := metrics.NewCollector()
		if err := collector.Register(registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		transport = metrics.NewInstrumentedTransport(transport, collector)

		o.metricsServer = newMetricsServer(cfg.Metrics, registry, o.logger)
		if err := o.metricsServer.Start(); err != nil {
			return err
		}
	}

	if o.verbose || cfg.Logging.Debug() {
		transport = newLoggingTransport(transport, o.logger)
	}

	o.httpClient = &http.Client{
		Timeout:   cfg.API.Timeout,
		Transport: transport,
	}
	return nil
}

func (o *rootOptions) teardown() error {
	if o.metricsServer == nil {
		return nil
	}
	server := o.metricsServer
	o.metricsServer = nil
	return server.Stop()
}

// agentClient returns a client authenticated with the agent token
func (o *rootOptions) agentClient() (*api.Client, error) {
	token := o.token
	if token == "" {
		token = o.cfg.API.AgentToken
	}
	if token == "" {
		return nil, errNoAgentToken
	}
	return api.NewClientWithConfig(o.cfg.API.BaseURL, token, o.httpClient), nil
}

// accountClient returns a client authenticated with the account token
func (o *rootOptions) accountClient() (*api.Client, error) {
	if o.cfg.API.AccountToken == "" {
		return nil, errors.New("no account token: set ACCOUNT_TOKEN or api.account_token")
	}
	return api.NewClientWithConfig(o.cfg.API.BaseURL, o.cfg.API.AccountToken, o.httpClient), nil
}
