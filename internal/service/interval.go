package service

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateOnly strips the time-of-day component, keeping the calendar date at
// midnight UTC. Every comparison in this package happens on normalized dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayRange is a range of room nights. CheckOut is the departure day: under
// the overlap rule that day is not occupied and can be another stay's arrival.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{CheckIn: DateOnly(checkIn), CheckOut: DateOnly(checkOut)}
}

// Overlaps is the half-open conflict test: ranges that touch at a boundary
// (one stay's checkout day is the other's check-in day) do NOT overlap.
// Example: [Jan 1, Jan 5] and [Jan 5, Jan 10] coexist on the same room.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Inverted reports a checkout before the check-in. A zero-night range
// (checkout == check-in) is not inverted.
func (r StayRange) Inverted() bool {
	return r.CheckOut.Before(r.CheckIn)
}
