package slider

// Event identifies a slider notification. Events carry no payload;
// observers read the current bounds from the slider.
type Event int

const (
	// EventValueChanged fires on every pointer move while tracking.
	EventValueChanged Event = iota + 1
	// EventInteractionEnded fires once when tracking stops.
	EventInteractionEnded
)

func (e Event) String() string {
	switch e {
	case EventValueChanged:
		return "value_changed"
	case EventInteractionEnded:
		return "interaction_ended"
	default:
		return "unknown"
	}
}

// Observer receives slider events.
type Observer func(Event)

type subscription struct {
	fn Observer
}

// Notifier fans events out to observers in registration order.
type Notifier struct {
	subs []*subscription
}

// Observe registers fn and returns a func that removes it again.
func (n *Notifier) Observe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	sub := &subscription{fn: fn}
	n.subs = append(n.subs, sub)
	return func() {
		for i, existing := range n.subs {
			if existing == sub {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every observer registered at the time of the call.
func (n *Notifier) Emit(ev Event) {
	snapshot := make([]*subscription, len(n.subs))
	copy(snapshot, n.subs)
	for _, sub := range snapshot {
		sub.fn(ev)
	}
}

// Len returns the number of registered observers.
func (n *Notifier) Len() int { return len(n.subs) }
