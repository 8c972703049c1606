// Package dispatcher orchestrates interception of hook requests.
package dispatcher

import (
	"context"

	"github.com/smykla-skalski/hookgate/internal/interceptor"
	"github.com/smykla-skalski/hookgate/pkg/hook"
	"github.com/smykla-skalski/hookgate/pkg/logger"
)

// Dispatcher runs the matching interceptors over a request and settles on a
// single decision.
type Dispatcher struct {
	registry *interceptor.Registry
	logger   logger.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(registry *interceptor.Registry, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   log,
	}
}

// Dispatch evaluates interceptors in registration order and returns the
// first non-pass decision. Interceptor order is rule precedence: the
// removal guard registers ahead of the echo tagger, so a command matching
// both is blocked, never mutated. Returns a pass decision when nothing
// matched.
func (d *Dispatcher) Dispatch(ctx context.Context, req *hook.Request) *interceptor.Decision {
	d.logger.Info("dispatching",
		"tool", req.Tool,
	)

	matched := d.registry.Find(req)

	if len(matched) == 0 {
		d.logger.Info("no interceptors matched",
			"tool", req.Tool,
		)

		return interceptor.Pass()
	}

	d.logger.Info("interceptors matched",
		"count", len(matched),
	)

	for _, ic := range matched {
		decision := ic.Intercept(ctx, req)
		if decision.IsPass() {
			continue
		}

		decision.Interceptor = ic.Name()

		d.logger.Info("decision settled",
			"interceptor", ic.Name(),
			"decision", decision.String(),
		)

		return decision
	}

	d.logger.Info("all interceptors passed")

	return interceptor.Pass()
}
