package logger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/hookgate/pkg/logger"
)

var _ = Describe("FileLogger", func() {
	var (
		buf *bytes.Buffer
		log logger.Logger
	)

	newLogger := func(level slog.Level) logger.Logger {
		buf = &bytes.Buffer{}

		return logger.NewWriterLogger(logger.NewLineHandler(buf, level))
	}

	Describe("levels", func() {
		It("logs errors at every level", func() {
			log = newLogger(slog.LevelError)

			log.Error("it broke")

			Expect(buf.String()).To(ContainSubstring("ERROR it broke"))
		})

		It("suppresses info below the info level", func() {
			log = newLogger(slog.LevelError)

			log.Info("routine")

			Expect(buf.String()).To(BeEmpty())
		})

		It("logs debug at the debug level", func() {
			log = newLogger(slog.LevelDebug)

			log.Debug("details")

			Expect(buf.String()).To(ContainSubstring("DEBUG details"))
		})
	})

	Describe("formatting", func() {
		BeforeEach(func() {
			log = newLogger(slog.LevelInfo)
		})

		It("writes one line per record with key=value pairs", func() {
			log.Info("dispatching", "tool", "my_bash_tool", "count", 2)

			line := buf.String()
			Expect(line).To(HaveSuffix("\n"))
			Expect(line).To(ContainSubstring("INFO dispatching"))
			Expect(line).To(ContainSubstring("tool=my_bash_tool"))
			Expect(line).To(ContainSubstring("count=2"))
		})

		It("quotes values containing spaces", func() {
			log.Info("parsed", "command", "echo hi")

			Expect(buf.String()).To(ContainSubstring(`command="echo hi"`))
		})

		It("carries With attributes onto every record", func() {
			log.With("interceptor", "intercept-echo").Info("decided")

			Expect(buf.String()).To(ContainSubstring("interceptor=intercept-echo"))
		})
	})

	Describe("NewFileLogger", func() {
		It("creates the parent directory and appends", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "nested", "hookgate.log")

			fileLog, err := logger.NewFileLogger(path, true, false)
			Expect(err).NotTo(HaveOccurred())

			fileLog.Info("hello")

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("INFO hello"))
		})
	})
})

var _ = Describe("NoOpLogger", func() {
	It("accepts every call without output", func() {
		log := logger.NewNoOpLogger()

		log.Debug("a")
		log.Info("b", "k", "v")
		log.Error("c")
		Expect(log.With("k", "v")).To(BeIdenticalTo(log))
	})
})
