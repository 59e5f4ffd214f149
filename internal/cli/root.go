// Package cli implements the infa2sql command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"infa2sql/internal/config"
	"infa2sql/internal/llm"
	"infa2sql/internal/logging"
)

var version = "0.1.0"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	logLevel string
	envFiles []string

	cfg    *config.Config
	logger *zap.Logger

	// newChatClient is swapped out in tests.
	newChatClient func(*config.Config) (llm.ChatClient, error)
}

func newApp() *app {
	return &app{
		logger:        zap.NewNop(),
		newChatClient: defaultChatClient,
	}
}

func defaultChatClient(cfg *config.Config) (llm.ChatClient, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(newApp())
}

func newRootCmdWithApp(a *app) *cobra.Command {
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:   "infa2sql [workflow]",
		Short: "Convert Informatica workflows to ANSI SQL",
		Long: "Convert Informatica PowerCenter XML and IDMC JSON workflow exports into\n" +
			"ANSI SQL INSERT INTO ... SELECT statements, one per mapping target.\n" +
			"With a workflow argument it behaves like 'infa2sql convert'.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return a.runConvert(cmd, args[0], opts)
		},
	}

	opts.register(rootCmd)

	rootCmd.SetVersionTemplate("infa2sql {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (default from "+config.EnvLogLevel+" or info)")
	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil,
		"Load environment variables from these files (default .env)")

	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newCountCmd(a))
	rootCmd.AddCommand(newPlanCmd(a))
	rootCmd.AddCommand(newLLMCmd(a))
	rootCmd.AddCommand(newAgentCmd(a))

	return rootCmd
}

// init loads configuration and builds the logger. Flag values win over the
// environment.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}

	logger, err := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	if len(cfg.EnvFiles) > 0 {
		logger.Debug("loaded env files", zap.Strings("files", cfg.EnvFiles))
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}
