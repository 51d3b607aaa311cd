package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tailored-agentic-units/assistant/assistant"
	"github.com/tailored-agentic-units/assistant/observability"
	"github.com/tailored-agentic-units/assistant/tui"
)

type rootOptions struct {
	configFile  string
	catalogPath string
	logFile     string
	verbose     bool

	cfg    *assistant.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Rule-based coding assistant",
		Long: `assistant answers chat input from a fixed rule table.

Run without arguments to open the terminal interface: a full-page
conversation plus a docked panel toggled with ctrl+a. Replies come from
canned texts that can be reworded with --catalog.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.Name() == "assistant")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), opts.cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to config file (.json, .yaml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "Directory of reply texts overriding the built-in ones")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newAskCmd(opts))
	cmd.AddCommand(newSegmentsCmd())

	return cmd
}

// init resolves configuration (defaults, file, environment, flags) and
// builds the zap logger behind the "zap" observer. The interactive UI owns
// the terminal, so it only logs when a log file is given.
func (o *rootOptions) init(interactive bool) error {
	cfg := assistant.DefaultConfig()
	if o.configFile != "" {
		loaded, err := assistant.LoadConfig(o.configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}

	logger, err := o.buildLogger(cfg.LogLevel, interactive)
	if err != nil {
		return err
	}
	o.logger = logger

	observability.RegisterObserver("zap", observability.NewZapObserver(logger))
	if cfg.Observer == "slog" {
		cfg.Observer = "zap"
	}

	o.cfg = &cfg
	return nil
}

func (o *rootOptions) buildLogger(level string, interactive bool) (*zap.Logger, error) {
	if interactive && o.logFile == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	if o.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if o.logFile != "" {
		config.OutputPaths = []string{o.logFile}
		config.ErrorOutputPaths = []string{o.logFile}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
