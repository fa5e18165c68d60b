package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rangeslider/internal/config"
	"github.com/alexisbeaulieu97/rangeslider/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logJSON    bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "rangeslider",
		Short:         "Dual-thumb range slider for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: !flags.logJSON,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", flags.logLevel, err)
			}
			flags.log = log.With("command", cmd.Name())
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a slider YAML document")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig returns the document named by --config, or the defaults.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.ParseConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	f.logger().Debug("config loaded", "path", f.configPath)
	return cfg, nil
}

func (f *rootFlags) logger() *logger.Logger {
	if f.log == nil {
		return logger.Nop()
	}
	return f.log
}
