package booking

import (
	"time"
)

// DateLayout is the calendar-date format used for stay boundaries.
const DateLayout = "2006-01-02"

// Stay is a date range measured in whole days.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(startDate, endDate string) (Stay, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}

	s := Stay{start: start, end: end}
	if s.Days() < 1 {
		return Stay{}, ErrInvalidDuration
	}
	return s, nil
}

// Days counts calendar days between the two dates. Both are parsed at UTC
// midnight so the difference is always a multiple of 24h.
func (s Stay) Days() int {
	return int(s.end.Sub(s.start).Hours() / 24)
}

func (s Stay) StartDate() string { return s.start.Format(DateLayout) }
func (s Stay) EndDate() string   { return s.end.Format(DateLayout) }

// Guests is a party size of at least one.
type Guests struct {
	value int
}

func NewGuests(n int) (Guests, error) {
	if n < 1 {
		return Guests{}, ErrInvalidGuests
	}
	return Guests{value: n}, nil
}

func (g Guests) Value() int { return g.value }
