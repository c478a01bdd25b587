package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/settings"
)

type rootFlags struct {
	configFile string
	logLevel   string
	logFormat  string
	verbose    bool

	settings settings.Settings
	log      *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "stylekit resolves responsive component props into utility class strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Settings file (default ./stylekit.yaml when present)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logger.FormatConsole, "Log format: console or json")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newBreakpointsCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves settings for the command being run and builds its logger.
func (f *rootFlags) setup(cmd *cobra.Command) error {
	s, err := settings.Load(f.configFile,
		settings.FlagBinding{Key: settings.KeyLogLevel, Flag: cmd.Flags().Lookup("log-level")},
		settings.FlagBinding{Key: settings.KeyLogFormat, Flag: cmd.Flags().Lookup("log-format")},
		settings.FlagBinding{Key: settings.KeyViewport, Flag: cmd.Flags().Lookup("viewport")},
	)
	if err != nil {
		return newCommandError(cmd.Name(), "loading settings", err, "Check the settings file and STYLEKIT_* environment variables.")
	}

	level := s.LogLevel
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:     level,
		Format:    s.LogFormat,
		Component: "cli",
		Writer:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError(cmd.Name(), "creating logger", err, "Use --log-level debug|info|warn|error and --log-format console|json.")
	}

	f.settings = s
	f.log = log.WithFields(map[string]any{"command": cmd.Name()})
	f.log.Debug("settings resolved", "log_level", level, "log_format", s.LogFormat, "viewport", s.Viewport)
	return nil
}
