// Package main provides the CLI entry point for hookgate.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/hookgate/internal/config"
	"github.com/smykla-skalski/hookgate/internal/config/factory"
	"github.com/smykla-skalski/hookgate/internal/dispatcher"
	"github.com/smykla-skalski/hookgate/internal/hookresponse"
	"github.com/smykla-skalski/hookgate/internal/parser"
	"github.com/smykla-skalski/hookgate/pkg/config"
	"github.com/smykla-skalski/hookgate/pkg/logger"
)

const (
	// ExitCodeSuccess covers every decided outcome: pass-through, block,
	// mutation, and the empty-input fast path. Block is signalled via the
	// JSON response, never via the exit code.
	ExitCodeSuccess = 0

	// ExitCodeFailure indicates a processing failure; the caller must treat
	// the invocation's effect as unknown.
	ExitCodeFailure = 1

	// DefaultLogFile is the log file path under the home directory.
	DefaultLogFile = ".hookgate/hookgate.log"
)

var (
	debugMode   bool
	traceMode   bool
	logFilePath string
)

func main() {
	os.Exit(mainWithExitCode())
}

// mainWithExitCode runs the CLI and adapts any failure into the error
// report contract: one JSON object on stderr, nothing on stdout, exit 1.
// This is the only place the failure path touches the process boundary.
func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		_ = hookresponse.WriteError(os.Stderr, err)

		return ExitCodeFailure
	}

	return ExitCodeSuccess
}

var rootCmd = &cobra.Command{
	Use:   "hookgate",
	Short: "Tool invocation interception hook",
	Long: `Tool invocation interception hook - reads a tool invocation as JSON from
standard input and answers with a block, mutation, or pass-through decision
on standard output.`,
	RunE:              run,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().StringVar(
		&logFilePath,
		"log-file",
		"",
		"Log file path (default: ~/"+DefaultLogFile+")",
	)
}

func run(cmd *cobra.Command, _ []string) error {
	// Read stdin before anything else so the empty-input fast path cannot
	// be preempted by a config or logging failure.
	jsonParser := parser.NewJSONParser(cmd.InOrStdin())

	req, err := jsonParser.Parse()
	if err != nil {
		if errors.Is(err, parser.ErrEmptyInput) {
			return nil
		}

		return errors.Wrap(err, "failed to parse input")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	log := setupLogger(cfg)

	log.Info("hook invoked",
		"tool", req.Tool,
		"command", req.Command,
	)

	registry := factory.NewRegistryBuilder(log).Build(cfg)

	disp := dispatcher.NewDispatcher(registry, log)
	decision := disp.Dispatch(context.Background(), req)

	resp := hookresponse.FromDecision(decision)
	if err := hookresponse.Write(cmd.OutOrStdout(), resp); err != nil {
		log.Error("failed to write hook response", "error", err)

		return err
	}

	log.Info("hook completed",
		"decision", decision.String(),
		"interceptor", decision.Interceptor,
	)

	return nil
}

// loadConfig loads configuration from all sources with flag precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, err
	}

	return loader.Load(buildFlagsMap(cmd))
}

// buildFlagsMap maps explicitly set CLI flags to config paths.
func buildFlagsMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	if cmd.Flags().Changed("debug") {
		flags["logging.debug"] = debugMode
	}

	if cmd.Flags().Changed("trace") {
		flags["logging.trace"] = traceMode
	}

	if cmd.Flags().Changed("log-file") {
		flags["logging.file"] = logFilePath
	}

	return flags
}

// setupLogger builds the file logger from config. Logging is best effort: a
// logger that cannot be created degrades to a no-op so the wire protocol
// is never disturbed.
//
//nolint:ireturn // callers only need the interface
func setupLogger(cfg *config.Config) logger.Logger {
	logging := cfg.GetLogging()

	path := logging.GetFile()
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return logger.NewNoOpLogger()
		}

		path = filepath.Join(homeDir, DefaultLogFile)
	}

	log, err := logger.NewFileLogger(path, logging.IsDebug(), logging.IsTrace())
	if err != nil {
		return logger.NewNoOpLogger()
	}

	return log
}
