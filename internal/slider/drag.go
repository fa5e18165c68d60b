package slider

// Thumb names one of the two handles.
type Thumb int

const (
	ThumbNone Thumb = iota
	ThumbLower
	ThumbUpper
)

func (t Thumb) String() string {
	switch t {
	case ThumbLower:
		return "lower"
	case ThumbUpper:
		return "upper"
	default:
		return "none"
	}
}

// DragSession is the state of one pointer gesture. It only exists between
// a claimed pointer-down and the matching pointer-up or cancel.
type DragSession struct {
	ActiveThumb Thumb
	// AnchorX is the dragged thumb's logical pixel position. It moves by
	// pointer deltas rather than following the raw pointer, so grabbing a
	// thumb off-center does not make the value jump.
	AnchorX      float64
	LastPointerX float64
}

// Tracking returns the active thumb and whether a gesture is in progress.
func (s *Slider) Tracking() (Thumb, bool) {
	if s.session == nil {
		return ThumbNone, false
	}
	return s.session.ActiveThumb, true
}

// Session returns a copy of the current drag session, if any.
func (s *Slider) Session() (DragSession, bool) {
	if s.session == nil {
		return DragSession{}, false
	}
	return *s.session, true
}

// BeginTracking hit-tests p against the upper thumb, then the lower thumb,
// and starts a drag session on the first hit. It returns false, changing
// nothing, when neither frame contains p. A press that arrives while a
// session is still open ends that session first.
//
// The upper anchor is the thumb position plus one thumb width while the
// lower anchor is the thumb position itself.
func (s *Slider) BeginTracking(p Point) bool {
	hitUpper := s.upperThumb.frame.Contains(p)
	hitLower := !hitUpper && s.lowerThumb.frame.Contains(p)
	if !hitUpper && !hitLower {
		return false
	}

	if s.session != nil {
		s.EndTracking()
	}

	session := &DragSession{LastPointerX: p.X}
	if hitUpper {
		s.upperThumb.setHighlighted(true)
		session.ActiveThumb = ThumbUpper
		session.AnchorX = s.upperPos + s.ThumbWidth()
	} else {
		s.lowerThumb.setHighlighted(true)
		session.ActiveThumb = ThumbLower
		session.AnchorX = s.lowerPos
	}
	s.session = session
	return true
}

// ContinueTracking applies one pointer move to the active thumb and emits
// EventValueChanged, whether or not clamping changed the value. It returns
// false when no gesture is in progress.
func (s *Slider) ContinueTracking(p Point) bool {
	session := s.session
	if session == nil {
		return false
	}

	session.AnchorX += p.X - session.LastPointerX
	session.LastPointerX = p.X
	v := s.mapper().ValueForPixel(session.AnchorX)

	switch session.ActiveThumb {
	case ThumbLower:
		s.SetLowerValue(v)
	case ThumbUpper:
		s.SetUpperValue(v)
	}

	s.notifier.Emit(EventValueChanged)
	return true
}

// EndTracking finishes the gesture: both highlights are cleared, the session
// is discarded and EventInteractionEnded fires. Values written during the
// gesture stay. Without a gesture in progress it does nothing.
func (s *Slider) EndTracking() {
	if s.session == nil {
		return
	}
	s.lowerThumb.setHighlighted(false)
	s.upperThumb.setHighlighted(false)
	s.session = nil
	s.notifier.Emit(EventInteractionEnded)
}

// CancelTracking behaves exactly like EndTracking; there is no rollback.
func (s *Slider) CancelTracking() {
	s.EndTracking()
}
