package slider

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatValue renders v with as many decimal places as the interval has,
// so an interval of 0.25 shows 12.50 and an interval of 5 shows 40.
// Non-finite input is printed as Go formats it.
func FormatValue(v, interval float64) string {
	if !isFinite(v) || !isFinite(interval) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	places := int32(0)
	if exp := decimal.NewFromFloat(interval).Exponent(); exp < 0 {
		places = -exp
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// LowerLabel formats the lower bound for display.
func (s *Slider) LowerLabel() string { return FormatValue(s.state.Lower, s.cfg.Interval) }

// UpperLabel formats the upper bound for display.
func (s *Slider) UpperLabel() string { return FormatValue(s.state.Upper, s.cfg.Interval) }
