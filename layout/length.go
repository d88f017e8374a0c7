package layout

import "math"

// Undefined is the sentinel for "indefinite" at the public boundary.
// It is larger than any real layout size and must never take part in
// arithmetic; internal code converts it to the (value, ok) idiom first.
const Undefined = 1e21

// isUndefined reports whether v is the sentinel or otherwise unusable
// as a concrete size. NaN in a style behaves like indefinite.
func isUndefined(v float64) bool {
	return math.IsNaN(v) || v >= Undefined
}

// definiteOr returns v when it is a usable size, otherwise fallback.
func definiteOr(v, fallback float64) float64 {
	if isUndefined(v) {
		return fallback
	}
	return v
}

// Length is a CSS-style length: a point value, a percentage, one of the
// keyword sizes (auto, max-content, fit-content) or a calc() sum.
//
// Equality on Length is value equality; percentages compare by their raw
// percent, never by a resolved size.
type Length struct {
	unit  Unit
	value float64
	terms []Length // calc only; each term is Point or Percent
}

// Point builds a pixel length in logical units.
func Point(v float64) Length { return Length{unit: UnitPoint, value: v} }

// Percent builds a percentage length; v is the raw percent (50 = 50%).
func Percent(v float64) Length { return Length{unit: UnitPercent, value: v} }

// Auto builds the auto keyword length.
func Auto() Length { return Length{unit: UnitAuto} }

// MaxContent builds the max-content keyword length.
func MaxContent() Length { return Length{unit: UnitMaxContent} }

// FitContent builds the fit-content keyword length.
func FitContent() Length { return Length{unit: UnitFitContent} }

// Calc builds a left-to-right sum of Point and Percent terms. A keyword
// term (auto, max-content, fit-content) makes the whole sum indefinite.
func Calc(terms ...Length) Length {
	return Length{unit: unitCalc, terms: terms}
}

// Unit returns the variant tag.
func (l Length) Unit() Unit { return l.unit }

// Raw returns the stored value: pixels for Point, the raw percent for
// Percent, 0 for keyword lengths.
func (l Length) Raw() float64 { return l.value }

// Resolve evaluates the length against the reference size ref.
// The second result is false for auto, max-content, fit-content, for
// percentages without a definite reference, and for NaN values.
func (l Length) Resolve(ref float64) (float64, bool) {
	switch l.unit {
	case UnitPoint:
		if math.IsNaN(l.value) {
			return 0, false
		}
		return l.value, true
	case UnitPercent:
		if math.IsNaN(l.value) || isUndefined(ref) {
			return 0, false
		}
		return l.value * ref / 100, true
	case unitCalc:
		sum := 0.0
		for _, t := range l.terms {
			v, ok := t.Resolve(ref)
			if !ok {
				return 0, false
			}
			sum += v
		}
		return sum, true
	default:
		return 0, false
	}
}

// IsDefinite reports whether resolving against ref yields a usable size.
func (l Length) IsDefinite(ref float64) bool {
	v, ok := l.Resolve(ref)
	return ok && !isUndefined(v)
}

// IsAuto reports whether the length is the auto keyword.
func (l Length) IsAuto() bool { return l.unit == UnitAuto }

// isContentBased reports whether the length sizes to content.
func (l Length) isContentBased() bool {
	return l.unit == UnitMaxContent || l.unit == UnitFitContent
}

// equal compares by variant and raw value, term-wise for calc.
func (l Length) equal(o Length) bool {
	if l.unit != o.unit || l.value != o.value || len(l.terms) != len(o.terms) {
		return false
	}
	for i := range l.terms {
		if !l.terms[i].equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// Value is the unit-tagged scalar form a style getter returns.
type Value struct {
	Value float64
	Unit  Unit
}

// asValue converts a Length to its getter representation. Keyword
// lengths carry a zero value; calc lengths are reported as auto since
// they cannot round-trip through a single scalar.
func (l Length) asValue() Value {
	switch l.unit {
	case UnitPoint, UnitPercent:
		return Value{Value: l.value, Unit: l.unit}
	case unitCalc:
		return Value{Unit: UnitAuto}
	default:
		return Value{Unit: l.unit}
	}
}

// Size is a resolved width/height pair in layout units.
type Size struct {
	Width  float64
	Height float64
}

// axis selects the component on the given dimension.
func (s Size) axis(d Dimension) float64 {
	if d == DimensionHorizontal {
		return s.Width
	}
	return s.Height
}

// clampf constrains v to [lo, hi]; hi may be Undefined meaning "no cap".
// A lo above hi wins, matching the min-over-max rule of CSS sizing.
func clampf(v, lo, hi float64) float64 {
	if !isUndefined(hi) && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
