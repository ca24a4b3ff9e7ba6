package date

import "iter"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range between two dates.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days between From and To.
func (r Range) Days() int { return r.To.DaysSince(r.From) }

// Step iterates from From to To (included) every 'days' days.
//
// It panics if days is not positive.
func (r Range) Step(days int) iter.Seq[Date] {
	if days <= 0 {
		panic("date: non-positive step")
	}
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(days) {
			if !yield(on) {
				return
			}
		}
	}
}

// Months iterates from From to To (included) adding one calendar month to the
// previous date each time.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.AddMonths(1) {
			if !yield(on) {
				return
			}
		}
	}
}
