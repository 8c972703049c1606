package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/hookgate/pkg/config"
)

var _ = Describe("LoggingConfig", func() {
	It("defaults debug on and trace off", func() {
		cfg := &config.LoggingConfig{}

		Expect(cfg.IsDebug()).To(BeTrue())
		Expect(cfg.IsTrace()).To(BeFalse())
	})

	It("honors explicit values", func() {
		off := false
		on := true
		cfg := &config.LoggingConfig{Debug: &off, Trace: &on}

		Expect(cfg.IsDebug()).To(BeFalse())
		Expect(cfg.IsTrace()).To(BeTrue())
	})

	It("is nil-safe", func() {
		var cfg *config.LoggingConfig

		Expect(cfg.IsDebug()).To(BeTrue())
		Expect(cfg.IsTrace()).To(BeFalse())
		Expect(cfg.GetFile()).To(BeEmpty())
	})
})

var _ = Describe("InterceptorsConfig", func() {
	It("defaults both interceptors to enabled", func() {
		cfg := &config.InterceptorsConfig{}

		Expect(cfg.GetRemovalGuard().IsEnabled()).To(BeTrue())
		Expect(cfg.GetEchoTagger().IsEnabled()).To(BeTrue())
	})

	It("honors an explicit disable", func() {
		off := false
		cfg := &config.InterceptorsConfig{
			RemovalGuard: &config.RemovalGuardConfig{Enabled: &off},
		}

		Expect(cfg.GetRemovalGuard().IsEnabled()).To(BeFalse())
		Expect(cfg.GetEchoTagger().IsEnabled()).To(BeTrue())
	})

	It("is nil-safe on the leaf configs", func() {
		var removal *config.RemovalGuardConfig

		var echo *config.EchoTaggerConfig

		Expect(removal.IsEnabled()).To(BeTrue())
		Expect(echo.IsEnabled()).To(BeTrue())
	})
})

var _ = Describe("Config", func() {
	It("creates nested sections on demand", func() {
		cfg := &config.Config{}

		Expect(cfg.GetLogging()).NotTo(BeNil())
		Expect(cfg.GetInterceptors()).NotTo(BeNil())
		Expect(cfg.Logging).NotTo(BeNil())
		Expect(cfg.Interceptors).NotTo(BeNil())
	})
})
