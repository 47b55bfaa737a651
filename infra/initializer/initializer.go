package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/dodopayments-go/pkg/config"
	"github.com/amirasaad/dodopayments-go/pkg/endpoint"
	"github.com/amirasaad/dodopayments-go/pkg/registry"
)

// Deps holds everything the commands need.
type Deps struct {
	Config   *config.App
	Logger   *slog.Logger
	Models   *registry.Registry
	Endpoint *endpoint.Builder
}

// Option customizes InitializeDependencies.
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput sends logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// InitializeDependencies initializes all the application dependencies.
// Endpoint is nil when no API key is configured.
func InitializeDependencies(cfg *config.App, opts ...Option) (*Deps, error) {
	o := options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	logCfg := cfg.Log
	if logCfg == nil {
		logCfg = &config.Log{Format: "text"}
	}

	deps := &Deps{
		Config: cfg,
		Logger: setupLogger(logCfg, o.logOutput),
		Models: registry.Default(),
	}

	if cfg.DodoPayments == nil || cfg.DodoPayments.ApiKey == "" {
		deps.Logger.Debug("No API key configured; URL building disabled")
		return deps, nil
	}

	builder, err := endpoint.NewBuilder(cfg.DodoPayments.Endpoint())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize endpoint builder: %w", err)
	}
	deps.Endpoint = builder
	deps.Logger.Debug("Endpoint builder ready",
		"environment", cfg.DodoPayments.Environment,
		"base_url", builder.BaseURL().String(),
	)
	return deps, nil
}
