package models

import (
	"time"

	"github.com/google/uuid"
)

type Branch struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Address   string        `db:"address" json:"address"`
	Phone     string        `db:"phone" json:"phone"`
	IsOpen    bool          `db:"is_open" json:"is_open"` // static fallback when no schedule is configured
	Hours     *OpeningHours `db:"-" json:"hours,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// OpeningHours holds the structured schedule: Monday-Thursday run a single
// shift, Friday-Sunday run a lunch shift and a dinner shift.
type OpeningHours struct {
	Weekday       Shift `json:"weekday"`
	WeekendLunch  Shift `json:"weekend_lunch"`
	WeekendDinner Shift `json:"weekend_dinner"`
}

// Shift is an open/close window in "HH:MM" 24h form. The interval is
// half-open: open <= now < close.
type Shift struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (s Shift) contains(minuteOfDay int) bool {
	openMin, okOpen := parseMinutes(s.Open)
	closeMin, okClose := parseMinutes(s.Close)
	if !okOpen || !okClose {
		return false
	}
	return openMin <= minuteOfDay && minuteOfDay < closeMin
}

func parseMinutes(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// OpenAt reports whether the branch accepts orders at the given time.
func (b *Branch) OpenAt(t time.Time) bool {
	if b.Hours == nil {
		return b.IsOpen
	}

	minute := t.Hour()*60 + t.Minute()
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return b.Hours.WeekendLunch.contains(minute) || b.Hours.WeekendDinner.contains(minute)
	default:
		return b.Hours.Weekday.contains(minute)
	}
}

func (b *Branch) OpenNow() bool {
	return b.OpenAt(time.Now())
}
