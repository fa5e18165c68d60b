// Package slider implements a dual-thumb range selection control.
//
// A Slider keeps three things consistent: the value space (minimum, maximum,
// lower, upper, interval, minimum gap), the pixel space (thumb frames and the
// track, measured in terminal cells) and the drag state machine that turns
// pointer movement into clamped value writes.
//
// The control is single-owner and not safe for concurrent use. Every setter
// performs validation, geometry recompute and a redraw request as one step;
// redraw requests only mark the control dirty, and the host collects a Scene
// with Display when it paints.
//
//	s, err := slider.New(slider.RangeConfig{Minimum: 0, Maximum: 100, Interval: 1, MinimumGap: 1}, slider.DefaultStyle())
//	s.SetBounds(slider.Bounds{Width: 61, Height: 1})
//	s.SetValues(20, 80)
//	stop := s.Observe(func(ev slider.Event) { fmt.Println(ev, s.LowerValue(), s.UpperValue()) })
//	defer stop()
package slider
