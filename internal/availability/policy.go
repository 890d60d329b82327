package availability

import (
	"fmt"
	"time"

	"frontdesk/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// Policy carries the hotel's check-in/check-out times and the single
// time reference all date arithmetic resolves against. Every date to
// instant conversion in this package goes through Policy, so policy
// times and reservation dates can never end up in mixed references.
type Policy struct {
	CheckIn  ClockTime
	CheckOut ClockTime
	Location *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		CheckIn:  ClockTime{Hour: 15},
		CheckOut: ClockTime{Hour: 11},
		Location: time.UTC,
	}
}

// PolicyFrom builds a Policy from stored settings. Unparseable values
// fall back to the defaults so a bad row cannot take the engine down.
func PolicyFrom(s domain.HotelSettings) Policy {
	pol := DefaultPolicy()
	if ci, err := ParseClockTime(s.CheckInTime); err == nil {
		pol.CheckIn = ci
	}
	if co, err := ParseClockTime(s.CheckOutTime); err == nil {
		pol.CheckOut = co
	}
	if s.Timezone != "" {
		if loc, err := time.LoadLocation(s.Timezone); err == nil {
			pol.Location = loc
		}
	}
	return pol
}

func (p Policy) loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// ResolveInstant combines a calendar date with a time of day into one
// comparable instant in the policy location.
func (p Policy) ResolveInstant(date time.Time, tod ClockTime) time.Time {
	y, m, d := date.In(p.loc()).Date()
	return time.Date(y, m, d, tod.Hour, tod.Minute, 0, 0, p.loc())
}

// DateOf truncates an instant to midnight of its calendar day in the
// policy location.
func (p Policy) DateOf(t time.Time) time.Time {
	y, m, d := t.In(p.loc()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.loc())
}

// Today is the calendar day of now in the policy location.
func (p Policy) Today(now time.Time) time.Time {
	return p.DateOf(now)
}

// ParseDate reads a YYYY-MM-DD value as midnight in the policy location.
func (p Policy) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, p.loc())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
