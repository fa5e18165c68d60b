package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/rangeslider/internal/tui"
)

type renderOptions struct {
	width int
	lower float64
	upper float64
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one static frame of the slider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), cmd.Flags(), root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Slider width in cells (defaults to the terminal width)")
	cmd.Flags().Float64Var(&opts.lower, "lower", 0, "Lower value to render")
	cmd.Flags().Float64Var(&opts.upper, "upper", 0, "Upper value to render")

	return cmd
}

func runRender(out io.Writer, fs *pflag.FlagSet, root *rootFlags, opts *renderOptions) error {
	log := root.logger()

	cfg, err := root.loadConfig()
	if err != nil {
		log.Error(err, "config load failed", "path", root.configPath)
		return err
	}

	width := opts.width
	if width <= 0 {
		width = cfg.ResolveWidth(terminalWidth(out))
	}

	s, err := cfg.NewSlider(width)
	if err != nil {
		return err
	}

	lower, upper := s.LowerValue(), s.UpperValue()
	if fs.Changed("lower") {
		lower = opts.lower
	}
	if fs.Changed("upper") {
		upper = opts.upper
	}
	s.SetValues(lower, upper)
	log.Debug("rendering", "width", width, "lower", s.LowerValue(), "upper", s.UpperValue())

	if _, err := fmt.Fprintln(out, tui.Paint(s.Display())); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	_, err = fmt.Fprintf(out, "lower: %s  upper: %s\n", s.LowerLabel(), s.UpperLabel())
	return err
}

// terminalWidth returns the column count of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
