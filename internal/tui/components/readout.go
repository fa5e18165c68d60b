package components

import (
	"fmt"
	"strings"
)

// ReadoutData is the state shown under the slider.
type ReadoutData struct {
	Lower    string
	Upper    string
	Dragging string
	Changes  int
	Ended    int
}

// Readout renders the selected bounds and interaction counters.
type Readout struct {
	data ReadoutData
}

// NewReadout creates a new Readout component.
func NewReadout(data ReadoutData) Readout {
	return Readout{data: data}
}

// View renders the readout.
func (r Readout) View() string {
	lines := []string{fmt.Sprintf("lower: %s  upper: %s", r.data.Lower, r.data.Upper)}

	if r.data.Dragging != "" {
		lines = append(lines, fmt.Sprintf("dragging %s thumb", r.data.Dragging))
	} else if r.data.Ended > 0 {
		lines = append(lines, "idle")
	}

	if r.data.Changes > 0 || r.data.Ended > 0 {
		lines = append(lines, fmt.Sprintf("changes: %d  interactions: %d", r.data.Changes, r.data.Ended))
	}

	return strings.Join(lines, "\n")
}
