package factory_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/hookgate/internal/config/factory"
	"github.com/smykla-skalski/hookgate/internal/dispatcher"
	"github.com/smykla-skalski/hookgate/internal/interceptor"
	"github.com/smykla-skalski/hookgate/internal/interceptors/shell"
	"github.com/smykla-skalski/hookgate/pkg/config"
	"github.com/smykla-skalski/hookgate/pkg/hook"
	"github.com/smykla-skalski/hookgate/pkg/logger"
)

// guardedRequest builds a request for the guarded tool with a command.
func guardedRequest(command string) *hook.Request {
	encoded, _ := json.Marshal(command)

	return &hook.Request{
		Tool: shell.GuardedTool,
		Args: hook.Args{
			hook.CommandKey: json.RawMessage(encoded),
		},
		Command: command,
	}
}

var _ = Describe("RegistryBuilder", func() {
	var (
		ctx  context.Context
		cfg  *config.Config
		disp *dispatcher.Dispatcher
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = &config.Config{}
	})

	JustBeforeEach(func() {
		log := logger.NewNoOpLogger()
		registry := factory.NewRegistryBuilder(log).Build(cfg)
		disp = dispatcher.NewDispatcher(registry, log)
	})

	It("registers both built-in interceptors", func() {
		registry := factory.NewRegistryBuilder(logger.NewNoOpLogger()).Build(cfg)

		Expect(registry.Count()).To(Equal(2))
	})

	It("matches only the guarded tool", func() {
		decision := disp.Dispatch(ctx, &hook.Request{
			Tool:    "other_tool",
			Args:    hook.Args{},
			Command: "rm -rf /",
		})

		Expect(decision.IsPass()).To(BeTrue())
	})

	It("checks the removal guard before the echo tagger", func() {
		decision := disp.Dispatch(ctx, guardedRequest("echo rm -rf /"))

		Expect(decision.Kind).To(Equal(interceptor.KindBlock))
		Expect(decision.Reason).To(Equal(shell.BlockReason))
	})

	It("mutates echo commands that are not blocked", func() {
		decision := disp.Dispatch(ctx, guardedRequest("echo hi"))

		Expect(decision.Kind).To(Equal(interceptor.KindMutate))
	})

	Context("with an interceptor disabled", func() {
		BeforeEach(func() {
			disabled := false
			cfg.GetInterceptors().RemovalGuard = &config.RemovalGuardConfig{Enabled: &disabled}
		})

		It("falls through to the next rule", func() {
			decision := disp.Dispatch(ctx, guardedRequest("echo rm -rf /"))

			Expect(decision.Kind).To(Equal(interceptor.KindMutate))
		})
	})
})
