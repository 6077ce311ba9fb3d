package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"postboard/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	EnvFile  string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the postboard CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "postboard",
		Short: "postboard - posts, threaded comments and likes",
		Long:  "A REST backend for posts with threaded comments and like toggles on both.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.EnvFile != "" {
				opts.cfg = config.LoadConfig(opts.EnvFile)
			} else {
				opts.cfg = config.LoadConfig()
			}
			if !cmd.Flags().Changed("log-level") && opts.cfg.LogLevel != "" {
				opts.LogLevel = opts.cfg.LogLevel
			}

			logger, err := newLogger(cmd.ErrOrStderr(), opts.LogLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			opts.logger = logger

			return opts.cfg.Validate()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "env file to load instead of .env")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}
