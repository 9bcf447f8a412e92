package domain

// DateRestrictions is the shared minimum/maximum number of days that must
// elapse between arriving somewhere and departing again. A nil field means
// that side is unrestricted. One immutable instance is shared read-only by
// every destination of a solve.
type DateRestrictions struct {
	MinDays *int
	MaxDays *int
}

// DateConstraints pairs a destination's arrival and departure windows with
// the solve-wide day-gap restrictions.
type DateConstraints struct {
	// Arrival is the window of acceptable days to fly in.
	Arrival SingleDateRange
	// Departure is the window of acceptable days to fly onward.
	Departure SingleDateRange
	// Restrictions points at the shared per-solve gap rules. May be nil.
	Restrictions *DateRestrictions
}

// CandidateArrivalDates enumerates, in ascending order, the days a flight
// may arrive at this destination given the previous stop's departure window
// and arrival day. prevArrival is nil for the origin anchor, which has no
// previous stop; the gap restrictions and the no-same-day rule only apply
// when it is set.
//
// The result is the day-by-day enumeration of
// Arrival ∩ prevDeparture, truncated to days strictly after prevArrival and
// clipped to [prevArrival+min, prevArrival+max].
func (c DateConstraints) CandidateArrivalDates(prevArrival *Date, prevDeparture SingleDateRange) []Date {
	window := c.Arrival.Intersect(prevDeparture)
	if window.IsEmpty() {
		return nil
	}

	if prevArrival == nil {
		return window.Enumerate(nil, nil)
	}

	window = window.Truncate(*prevArrival)
	if window.IsEmpty() {
		return nil
	}

	// The floor starts at the day after arrival so that an unconstrained
	// window (untouched by Truncate) still cannot depart on arrival day.
	dayAfter := prevArrival.AddDays(1)
	floor := &dayAfter
	var ceil *Date
	if r := c.Restrictions; r != nil {
		if r.MinDays != nil {
			d := maxDate(prevArrival.AddDays(*r.MinDays), dayAfter)
			floor = &d
		}
		if r.MaxDays != nil {
			d := prevArrival.AddDays(*r.MaxDays)
			ceil = &d
		}
	}
	return window.Enumerate(floor, ceil)
}

// Destination is one stop of the route problem: an IATA airport code and
// the date constraints attached to it.
type Destination struct {
	IATA        string
	Constraints DateConstraints
}
