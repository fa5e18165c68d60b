package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rangeslider/internal/logger"
	"github.com/alexisbeaulieu97/rangeslider/internal/tui"
)

type demoOptions struct {
	logFile string
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drag the slider thumbs with the mouse",
		Long:  `Launch a full-screen demo. Drag either thumb with the left mouse button; press q to quit.
The slider fits the terminal, capped at layout.width when the config sets one.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the demo owns the screen")

	return cmd
}

func runDemo(out io.Writer, root *rootFlags, opts *demoOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var sink io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}
	log, err := logger.New(logger.Options{Level: root.logLevel, HumanReadable: !root.logJSON, Writer: sink})
	if err != nil {
		return err
	}
	log = log.With("command", "demo")

	s, err := cfg.NewSlider(cfg.ResolveWidth(terminalWidth(os.Stdout)))
	if err != nil {
		return err
	}

	log.Info("demo started", "lower", s.LowerValue(), "upper", s.UpperValue())
	app := tui.NewApp(s, log).WithMaxWidth(cfg.Layout.Width)
	defer app.Close()

	program := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "demo failed")
		return fmt.Errorf("run demo: %w", err)
	}

	_, err = fmt.Fprintf(out, "lower: %s  upper: %s\n", s.LowerLabel(), s.UpperLabel())
	return err
}
