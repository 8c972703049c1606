// Package factory builds the interceptor registry from configuration.
package factory

import (
	"github.com/smykla-skalski/hookgate/internal/interceptor"
	"github.com/smykla-skalski/hookgate/internal/interceptors/shell"
	"github.com/smykla-skalski/hookgate/pkg/config"
	"github.com/smykla-skalski/hookgate/pkg/logger"
)

// RegistryBuilder assembles the interceptor registry.
type RegistryBuilder struct {
	logger logger.Logger
}

// NewRegistryBuilder creates a new RegistryBuilder.
func NewRegistryBuilder(log logger.Logger) *RegistryBuilder {
	return &RegistryBuilder{
		logger: log,
	}
}

// Build registers the built-in interceptors against the guarded tool.
// Registration order encodes rule precedence: the removal guard is checked
// before the echo tagger.
func (b *RegistryBuilder) Build(cfg *config.Config) *interceptor.Registry {
	registry := interceptor.NewRegistry()

	interceptors := cfg.GetInterceptors()
	forGuardedTool := interceptor.ForTool(shell.GuardedTool)

	registry.Register(
		shell.NewRemovalGuard(b.logger, interceptors.GetRemovalGuard()),
		forGuardedTool,
	)
	registry.Register(
		shell.NewEchoTagger(b.logger, interceptors.GetEchoTagger()),
		forGuardedTool,
	)

	b.logger.Debug("interceptor registry built",
		"count", registry.Count(),
	)

	return registry
}
