package shell

import (
	"context"
	"strings"

	"github.com/smykla-skalski/hookgate/internal/interceptor"
	"github.com/smykla-skalski/hookgate/pkg/config"
	"github.com/smykla-skalski/hookgate/pkg/hook"
	"github.com/smykla-skalski/hookgate/pkg/logger"
)

const (
	// dangerousRemoval is the substring that triggers the block.
	// Matching is literal and case-sensitive, no normalization.
	dangerousRemoval = "rm -rf"

	// BlockReason is reported to the caller when the guard fires.
	BlockReason = "Execution of rm -rf is strictly prohibited by security python hook."
)

// RemovalGuard blocks commands containing a recursive force removal.
type RemovalGuard struct {
	interceptor.BaseInterceptor
	config *config.RemovalGuardConfig
}

// NewRemovalGuard creates a new RemovalGuard instance.
func NewRemovalGuard(log logger.Logger, cfg *config.RemovalGuardConfig) *RemovalGuard {
	return &RemovalGuard{
		BaseInterceptor: *interceptor.NewBaseInterceptor("intercept-removal", log),
		config:          cfg,
	}
}

// Intercept blocks the invocation when the command contains "rm -rf".
func (g *RemovalGuard) Intercept(_ context.Context, req *hook.Request) *interceptor.Decision {
	log := g.Logger()

	if !g.config.IsEnabled() {
		log.Debug("removal guard disabled, skipping")

		return interceptor.Pass()
	}

	if !req.HasCommand() {
		log.Debug("empty command, skipping removal check")

		return interceptor.Pass()
	}

	if !strings.Contains(req.Command, dangerousRemoval) {
		return interceptor.Pass()
	}

	decision := interceptor.Block(BlockReason)
	g.LogDecision(req, decision)

	return decision
}
