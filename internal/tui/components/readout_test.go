package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadoutView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     ReadoutData
		contains []string
		excludes []string
	}{
		{
			name:     "bounds only before any interaction",
			data:     ReadoutData{Lower: "20", Upper: "80"},
			contains: []string{"lower: 20  upper: 80"},
			excludes: []string{"dragging", "idle", "changes"},
		},
		{
			name:     "active drag names the thumb",
			data:     ReadoutData{Lower: "20", Upper: "85", Dragging: "upper", Changes: 3},
			contains: []string{"dragging upper thumb", "changes: 3  interactions: 0"},
			excludes: []string{"idle"},
		},
		{
			name:     "idle after an interaction",
			data:     ReadoutData{Lower: "0.5", Upper: "1.0", Changes: 4, Ended: 1},
			contains: []string{"idle", "changes: 4  interactions: 1"},
			excludes: []string{"dragging"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewReadout(tt.data).View()
			for _, s := range tt.contains {
				require.Contains(t, view, s)
			}
			for _, s := range tt.excludes {
				require.NotContains(t, view, s)
			}
		})
	}
}
