package tui

// ValueChangedMsg is sent after every pointer move while a thumb is dragged.
// Read the new bounds from the slider.
type ValueChangedMsg struct{}

// InteractionEndedMsg is sent once when a drag ends or is cancelled.
type InteractionEndedMsg struct{}
