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
	// echoMarker is the substring that triggers the rewrite.
	echoMarker = "echo"

	// InterceptSuffix is appended to the command on rewrite.
	InterceptSuffix = " (intercepted by Python hook!)"
)

// EchoTagger rewrites echo commands to tag their output, demonstrating the
// argument mutation path. Every args key other than the command is passed
// through untouched.
type EchoTagger struct {
	interceptor.BaseInterceptor
	config *config.EchoTaggerConfig
}

// NewEchoTagger creates a new EchoTagger instance.
func NewEchoTagger(log logger.Logger, cfg *config.EchoTaggerConfig) *EchoTagger {
	return &EchoTagger{
		BaseInterceptor: *interceptor.NewBaseInterceptor("intercept-echo", log),
		config:          cfg,
	}
}

// Intercept rewrites the command when it contains "echo".
func (t *EchoTagger) Intercept(_ context.Context, req *hook.Request) *interceptor.Decision {
	log := t.Logger()

	if !t.config.IsEnabled() {
		log.Debug("echo tagger disabled, skipping")

		return interceptor.Pass()
	}

	if !req.HasCommand() {
		log.Debug("empty command, skipping echo check")

		return interceptor.Pass()
	}

	if !strings.Contains(req.Command, echoMarker) {
		return interceptor.Pass()
	}

	decision := interceptor.Mutate(req.Args.WithCommand(req.Command + InterceptSuffix))
	t.LogDecision(req, decision)

	return decision
}
