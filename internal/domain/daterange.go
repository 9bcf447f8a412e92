package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSpan is returned when a span is constructed with low > high.
var ErrInvalidSpan = errors.New("date span: low must not be after high")

type rangeKind int

const (
	kindUnconstrained rangeKind = iota
	kindFixed
	kindSpan
	kindEmpty
)

// SingleDateRange is one side (inbound or outbound) of a stay: either no
// constraint at all, a single fixed day, an inclusive span of days, or the
// impossible (empty) range produced by intersecting disjoint windows.
//
// An unconstrained range is "bounded by context": it never restricts the
// other operand of an intersection, it adopts the other operand's bounds.
// This is deliberately not a universal range.
type SingleDateRange struct {
	kind rangeKind
	low  Date
	high Date
}

// Unconstrained returns the range that accepts whatever the surrounding
// constraints allow.
func Unconstrained() SingleDateRange {
	return SingleDateRange{kind: kindUnconstrained}
}

// FixedDate returns the range containing exactly one day.
func FixedDate(d Date) SingleDateRange {
	return SingleDateRange{kind: kindFixed, low: d, high: d}
}

// DateSpan returns the inclusive range [low, high]. A single-day span
// collapses to FixedDate.
func DateSpan(low, high Date) (SingleDateRange, error) {
	if low.After(high) {
		return SingleDateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidSpan, low, high)
	}
	return spanOf(low, high), nil
}

// EmptyRange returns the range containing no days.
func EmptyRange() SingleDateRange {
	return SingleDateRange{kind: kindEmpty}
}

// spanOf builds a range from known-ordered bounds, collapsing to Fixed.
func spanOf(low, high Date) SingleDateRange {
	if low.Compare(high) == 0 {
		return FixedDate(low)
	}
	return SingleDateRange{kind: kindSpan, low: low, high: high}
}

func (r SingleDateRange) IsUnconstrained() bool { return r.kind == kindUnconstrained }

func (r SingleDateRange) IsEmpty() bool { return r.kind == kindEmpty }

func (r SingleDateRange) IsFixed() bool { return r.kind == kindFixed }

// Bounds returns the inclusive low/high bounds. ok is false for the
// unconstrained and empty ranges, which have none.
func (r SingleDateRange) Bounds() (low, high Date, ok bool) {
	switch r.kind {
	case kindFixed, kindSpan:
		return r.low, r.high, true
	default:
		return Date{}, Date{}, false
	}
}

func (r SingleDateRange) String() string {
	switch r.kind {
	case kindUnconstrained:
		return "unconstrained"
	case kindEmpty:
		return "empty"
	case kindFixed:
		return r.low.String()
	default:
		return fmt.Sprintf("[%s, %s]", r.low, r.high)
	}
}

// Intersect returns the tightest range compatible with both r and other.
// It is commutative. The empty range is absorbing; an unconstrained operand
// adopts the other operand's bounds. Disjoint spans yield the empty range,
// and a single-day overlap collapses to a fixed date.
func (r SingleDateRange) Intersect(other SingleDateRange) SingleDateRange {
	if r.kind == kindEmpty || other.kind == kindEmpty {
		return EmptyRange()
	}
	if r.kind == kindUnconstrained {
		return other
	}
	if other.kind == kindUnconstrained {
		return r
	}

	low := maxDate(r.low, other.low)
	high := minDate(r.high, other.high)
	if low.After(high) {
		return EmptyRange()
	}
	return spanOf(low, high)
}

// Truncate removes every day on or before cutoff from the range. Used to
// forbid departing on or before the day of arrival. The unconstrained range
// is returned as-is; its effective bounds come from context.
func (r SingleDateRange) Truncate(cutoff Date) SingleDateRange {
	switch r.kind {
	case kindUnconstrained, kindEmpty:
		return r
	default:
		if !r.high.After(cutoff) {
			return EmptyRange()
		}
		return spanOf(maxDate(r.low, cutoff.AddDays(1)), r.high)
	}
}

// Enumerate returns the range's days in ascending order, clipped to the
// inclusive [floor, ceil] window (nil means no bound on that side). The
// result is always finite: an unconstrained range enumerates the [floor,
// ceil] window itself and yields nothing when either side is missing.
func (r SingleDateRange) Enumerate(floor, ceil *Date) []Date {
	var low, high Date
	switch r.kind {
	case kindEmpty:
		return nil
	case kindUnconstrained:
		if floor == nil || ceil == nil {
			return nil
		}
		low, high = *floor, *ceil
	default:
		low, high = r.low, r.high
		if floor != nil {
			low = maxDate(low, *floor)
		}
		if ceil != nil {
			high = minDate(high, *ceil)
		}
	}

	if low.After(high) {
		return nil
	}

	days := make([]Date, 0, low.DaysUntil(high)+1)
	for d := low; !d.After(high); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
