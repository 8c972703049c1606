// Package interceptor provides the interceptor interface and decision types.
package interceptor

//go:generate mockgen -source=interceptor.go -destination=interceptor_mock.go -package=interceptor

import (
	"context"

	"github.com/smykla-skalski/hookgate/pkg/hook"
	"github.com/smykla-skalski/hookgate/pkg/logger"
)

// DecisionKind classifies a decision.
type DecisionKind string

const (
	// KindPass takes no action on the invocation.
	KindPass DecisionKind = "pass"

	// KindBlock refuses the invocation.
	KindBlock DecisionKind = "block"

	// KindMutate substitutes replacement arguments before execution.
	KindMutate DecisionKind = "mutate"
)

// Decision is the outcome an interceptor returns for a request.
type Decision struct {
	// Kind classifies the decision.
	Kind DecisionKind

	// Reason explains a block decision. Empty otherwise.
	Reason string

	// Args carries the replacement arguments of a mutate decision.
	Args hook.Args

	// Interceptor is the name of the deciding interceptor. Set by the
	// dispatcher, empty on pass.
	Interceptor string
}

// Pass creates a pass-through decision.
func Pass() *Decision {
	return &Decision{Kind: KindPass}
}

// Block creates a block decision with the given reason.
func Block(reason string) *Decision {
	return &Decision{
		Kind:   KindBlock,
		Reason: reason,
	}
}

// Mutate creates a mutation decision carrying the replacement args.
func Mutate(args hook.Args) *Decision {
	return &Decision{
		Kind: KindMutate,
		Args: args,
	}
}

// IsPass reports whether the decision takes no action.
func (d *Decision) IsPass() bool {
	return d == nil || d.Kind == KindPass
}

// String returns a short representation of the decision.
func (d *Decision) String() string {
	if d == nil {
		return string(KindPass)
	}

	return string(d.Kind)
}

// Interceptor inspects a tool invocation and decides its fate.
type Interceptor interface {
	// Name returns the interceptor name.
	Name() string

	// Intercept evaluates the request and returns a decision.
	Intercept(ctx context.Context, req *hook.Request) *Decision
}

// BaseInterceptor provides common interceptor functionality.
type BaseInterceptor struct {
	name   string
	logger logger.Logger
}

// NewBaseInterceptor creates a new BaseInterceptor.
func NewBaseInterceptor(name string, log logger.Logger) *BaseInterceptor {
	return &BaseInterceptor{
		name:   name,
		logger: log,
	}
}

// Name returns the interceptor name.
func (b *BaseInterceptor) Name() string {
	return b.name
}

// Logger returns the logger.
//
//nolint:ireturn // interface for polymorphism
func (b *BaseInterceptor) Logger() logger.Logger {
	return b.logger
}

// LogDecision logs a non-pass decision.
func (b *BaseInterceptor) LogDecision(req *hook.Request, d *Decision) {
	if d.IsPass() {
		b.logger.Debug("interceptor passed",
			"interceptor", b.name,
			"tool", req.Tool,
		)

		return
	}

	b.logger.Info("interceptor decided",
		"interceptor", b.name,
		"tool", req.Tool,
		"decision", d.String(),
	)
}
