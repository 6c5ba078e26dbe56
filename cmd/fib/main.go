package main

import (
	"fmt"
	"os"

	"fibrun/internal/config"
	"fibrun/internal/fib"
	"fibrun/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCmd builds the fib command. State lives in the closure so tests can
// build a fresh command per case.
func newRootCmd() *cobra.Command {
	var (
		cfg    *config.Config
		logger = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:   "fib [n] [runs]",
		Short: "Print the nth Fibonacci number",
		Long: `Computes the nth Fibonacci number (fib(1) = fib(2) = 1) with an iterative
loop and prints it once.

Both arguments are optional. An absent or unparseable n falls back to 60 and
runs falls back to 1. The computation is repeated runs times so the process
can be timed externally; only the last value is printed. Values past fib(93)
wrap modulo 2^64.

Every token is positional. Diagnostics are configured through the environment:
  FIB_CONFIG      YAML config file (argument defaults, logging)
  FIB_DEBUG       enable logging on stderr
  FIB_LOG_LEVEL   debug, info, warn, error
  FIB_LOG_FORMAT  json, text

Examples:
  fib          # 1548008755920
  fib 10       # 55
  fib 60 1000  # same output, computed 1000 times`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadFromEnv()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			base, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = base.With(zap.String("run_id", uuid.NewString()))

			logging.For(logger, cfg.Logging, logging.CategoryBoot).Debug("logger initialized",
				zap.String("config", os.Getenv(config.EnvConfigPath)),
				zap.Uint("default_n", cfg.Defaults.N),
				zap.Uint("default_runs", cfg.Defaults.Runs))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			argLog := logging.For(logger, cfg.Logging, logging.CategoryArgs)
			n := parseArg(args, 0, cfg.Defaults.N, argLog)
			runs := parseArg(args, 1, cfg.Defaults.Runs, argLog)
			if len(args) > 2 {
				argLog.Debug("ignoring extra arguments", zap.Strings("extra", args[2:]))
			}

			m := fib.Measure(n, runs)
			logging.For(logger, cfg.Logging, logging.CategoryCompute).Info("computed",
				zap.Uint("n", m.N),
				zap.Uint("runs", m.Runs),
				zap.Uint64("value", m.Value),
				zap.Duration("elapsed", m.Elapsed),
				zap.Duration("per_run", m.PerRun()))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), m.Value)
			return err
		},
	}

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
