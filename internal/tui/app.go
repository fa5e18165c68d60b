package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/rangeslider/internal/logger"
	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
	"github.com/alexisbeaulieu97/rangeslider/internal/tui/components"
)

const (
	// appMargin is the number of blank columns left of the slider.
	appMargin = 2
	// sliderRow is the screen row of the slider's first line: title, blank.
	sliderRow = 2
	// minSliderWidth keeps room for two thumbs and a cell of track.
	minSliderWidth = 3
)

// App is the interactive demo: a title, the slider, its labels, and a
// readout of the events it has emitted.
type App struct {
	slider   SliderModel
	coverage components.Coverage
	keys     keyMap
	help     help.Model
	log      *logger.Logger

	maxWidth int
	changes  int
	ended    int
}

// NewApp builds the demo around s. The slider keeps its current height;
// its width follows the terminal unless capped with WithMaxWidth.
func NewApp(s *slider.Slider, log *logger.Logger) App {
	if log == nil {
		log = logger.Nop()
	}
	width := int(s.Bounds().Width)
	return App{
		slider:   NewSliderModel(s, log).WithOrigin(appMargin, sliderRow),
		coverage: components.NewCoverage(width),
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      log,
	}
}

// WithMaxWidth caps the slider width in cells. Narrower terminals still
// shrink it. Zero removes the cap.
func (a App) WithMaxWidth(width int) App {
	a.maxWidth = max(width, 0)
	return a
}

// Close stops the app from observing its slider.
func (a App) Close() { a.slider.Close() }

// sliderWidth is the slider width for a terminal of the given width.
func (a App) sliderWidth(terminal int) int {
	w := terminal - 2*appMargin
	if a.maxWidth > 0 {
		w = min(w, a.maxWidth)
	}
	return max(w, minSliderWidth)
}

// Slider returns the control driven by the app.
func (a App) Slider() *slider.Slider { return a.slider.Slider() }

// Changes returns how many value changes have been received.
func (a App) Changes() int { return a.changes }

// Interactions returns how many drags have ended.
func (a App) Interactions() int { return a.ended }

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = max(msg.Width-appMargin, 0)
		w := a.sliderWidth(msg.Width)
		h := int(a.Slider().Bounds().Height)
		a.slider.Resize(w, max(h, 1))
		a.coverage = components.NewCoverage(w)
		a.log.Debug("resized", "width", w, "height", h)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		}
		return a, nil

	case ValueChangedMsg:
		a.changes++
		return a, nil

	case InteractionEndedMsg:
		a.ended++
		a.log.Info("selection changed",
			"lower", a.Slider().LowerValue(),
			"upper", a.Slider().UpperValue(),
		)
		return a, nil
	}

	var cmd tea.Cmd
	a.slider, cmd = a.slider.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	s := a.Slider()
	pad := strings.Repeat(" ", appMargin)

	var b strings.Builder
	b.WriteString(pad + titleStyle.Render("Range slider"))
	b.WriteString("\n\n")
	for _, line := range strings.Split(a.slider.View(), "\n") {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(pad + a.coverage.View(s.LowerValue(), s.UpperValue(), s.MinimumValue(), s.MaximumValue()))
	b.WriteString("\n\n")

	dragging := ""
	if thumb, ok := s.Tracking(); ok {
		dragging = thumb.String()
	}
	readout := components.NewReadout(components.ReadoutData{
		Lower:    labelStyle.Render(s.LowerLabel()),
		Upper:    labelStyle.Render(s.UpperLabel()),
		Dragging: dragging,
		Changes:  a.changes,
		Ended:    a.ended,
	})
	for _, line := range strings.Split(readout.View(), "\n") {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(pad + statusStyle.Render(a.help.View(a.keys)))
	return b.String()
}
