package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/rangeslider/internal/logger"
	"github.com/alexisbeaulieu97/rangeslider/internal/slider"
)

// eventQueue collects slider notifications during one Update call. It is
// shared by copies of SliderModel, which all drive the same slider.
type eventQueue struct {
	events []slider.Event
}

// frameCache holds the last painted frame until the slider asks for a redraw.
type frameCache struct {
	view  string
	valid bool
}

// SliderModel adapts a slider.Slider to Bubble Tea: left-button mouse
// presses, motion and releases drive the drag state machine, focus loss
// cancels a drag, and slider events come back as messages.
type SliderModel struct {
	slider  *slider.Slider
	originX int
	originY int
	log     *logger.Logger
	queue   *eventQueue
	frame   *frameCache
	stop    func()
}

// NewSliderModel wraps s. A nil logger discards output. Call Close when the
// model is dropped before the slider is.
func NewSliderModel(s *slider.Slider, log *logger.Logger) SliderModel {
	if log == nil {
		log = logger.Nop()
	}
	q := &eventQueue{}
	stop := s.Observe(func(ev slider.Event) { q.events = append(q.events, ev) })
	return SliderModel{
		slider: s,
		log:    log.With("component", "slider"),
		queue:  q,
		frame:  &frameCache{},
		stop:   stop,
	}
}

// Close unregisters the model from its slider and drops queued events.
// Later updates still drive the slider but produce no messages.
func (m SliderModel) Close() {
	if m.stop != nil {
		m.stop()
	}
	m.queue.events = m.queue.events[:0]
}

// WithOrigin places the control at screen cell (x, y). Mouse coordinates are
// translated by this offset.
func (m SliderModel) WithOrigin(x, y int) SliderModel {
	m.originX, m.originY = x, y
	return m
}

// Origin returns the screen cell of the control's top-left corner.
func (m SliderModel) Origin() (int, int) { return m.originX, m.originY }

// Slider returns the wrapped control.
func (m SliderModel) Slider() *slider.Slider { return m.slider }

// Init implements tea.Model.
func (m SliderModel) Init() tea.Cmd { return nil }

// Resize sets the control frame in cells.
func (m SliderModel) Resize(width, height int) {
	m.slider.SetBounds(slider.Bounds{Width: float64(width), Height: float64(height)})
}

// Update feeds mouse and focus messages to the slider and returns commands
// delivering any resulting ValueChangedMsg and InteractionEndedMsg in order.
func (m SliderModel) Update(msg tea.Msg) (SliderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		if _, tracking := m.slider.Tracking(); tracking {
			m.log.Debug("tracking cancelled", "reason", "focus lost")
			m.slider.CancelTracking()
		}
	}
	return m, m.drain()
}

func (m SliderModel) handleMouse(msg tea.MouseMsg) {
	// Cell centres, so a press anywhere in a thumb's cell hits it.
	p := slider.Point{
		X: float64(msg.X-m.originX) + 0.5,
		Y: float64(msg.Y-m.originY) + 0.5,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.slider.BeginTracking(p) {
			thumb, _ := m.slider.Tracking()
			m.log.Debug("tracking started", "thumb", thumb.String(), "x", p.X, "y", p.Y)
		}
	case tea.MouseActionMotion:
		m.slider.ContinueTracking(p)
	case tea.MouseActionRelease:
		if _, tracking := m.slider.Tracking(); tracking {
			m.slider.EndTracking()
			m.log.Debug("tracking ended",
				"lower", m.slider.LowerValue(),
				"upper", m.slider.UpperValue(),
			)
		}
	}
}

func (m SliderModel) drain() tea.Cmd {
	if len(m.queue.events) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.queue.events))
	for _, ev := range m.queue.events {
		switch ev {
		case slider.EventValueChanged:
			cmds = append(cmds, func() tea.Msg { return ValueChangedMsg{} })
		case slider.EventInteractionEnded:
			cmds = append(cmds, func() tea.Msg { return InteractionEndedMsg{} })
		}
	}
	m.queue.events = m.queue.events[:0]

	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// View paints the slider, reusing the previous frame when no redraw has
// been requested since.
func (m SliderModel) View() string {
	if m.frame.valid && !m.slider.NeedsDisplay() {
		return m.frame.view
	}
	m.frame.view = Paint(m.slider.Display())
	m.frame.valid = true
	return m.frame.view
}
