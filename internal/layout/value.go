package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // Not set; behaves like auto for sizes and zero for edges
	UnitFixed                 // Absolute terminal cells
	UnitPercent               // Percentage of the containing block
	UnitAuto                  // Size determined by content/flex; auto margins absorb slack
)

// Value represents a dimension that can be fixed, percentage, auto, or unset.
// The zero Value is undefined.
type Value struct {
	Amount float64
	Unit   Unit
}

// Undefined returns a Value that carries no constraint.
func Undefined() Value {
	return Value{}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Length returns a fixed Value with a fractional cell count.
// Fractions survive until the rounding pass snaps the result to the grid.
func Length(cells float64) Value {
	if math.IsNaN(cells) || math.IsInf(cells, 0) {
		return Value{}
	}
	return Value{Amount: cells, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return Value{}
	}
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value in cells given the size of the containing block.
// Auto, undefined, and percentages of an undefined container return fallback.
func (v Value) Resolve(available, fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		if !isDefined(available) {
			return fallback
		}
		return available * v.Amount / 100.0
	default:
		return fallback
	}
}

// resolve is Resolve with an undefined fallback.
func (v Value) resolve(available float64) float64 {
	return v.Resolve(available, undefined)
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined reports whether the value was set to anything, including auto.
func (v Value) IsDefined() bool {
	return v.Unit != UnitUndefined
}

// String renders the value the way ParseValue accepts it.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	case UnitAuto:
		return "auto"
	default:
		return "undefined"
	}
}

// ParseValue parses "auto", "undefined", "12", "12.5" or "50%".
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "undefined", "none":
		return Value{}, nil
	case "auto":
		return Auto(), nil
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percent(f), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("invalid value %q: not finite", s)
	}
	return Length(f), nil
}
