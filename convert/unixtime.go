package convert

import (
	"time"

	"github.com/cockroachdb/errors"
)

// DateTime is a broken-down UTC calendar time with second precision
type DateTime struct {
	Year   int32
	Month  uint32
	Day    uint32
	Hour   uint32
	Minute uint32
	Second uint32
}

// Validate rejects fields outside their calendar ranges, including days past the end of the month
func (d DateTime) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return errors.Mark(errors.Newf("month %d is out of range", d.Month), ErrInvalidDate)
	}

	daysInMonth := time.Date(int(d.Year), time.Month(d.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if d.Day < 1 || int(d.Day) > daysInMonth {
		return errors.Mark(errors.Newf("day %d is out of range for %04d-%02d", d.Day, d.Year, d.Month), ErrInvalidDate)
	}

	if d.Hour > 23 || d.Minute > 59 || d.Second > 59 {
		return errors.Mark(errors.Newf("time %02d:%02d:%02d is out of range", d.Hour, d.Minute, d.Second), ErrInvalidDate)
	}

	return nil
}

func (d DateTime) Time() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), int(d.Hour), int(d.Minute), int(d.Second), 0, time.UTC)
}

// ToUnixTime returns the number of seconds, or milliseconds, between the Unix epoch and d. Out of range
// fields are normalized the way time.Date normalizes them; call Validate first to reject them instead.
func ToUnixTime(d DateTime, milliseconds bool) int64 {
	t := d.Time()
	if milliseconds {
		return t.UnixMilli()
	}
	return t.Unix()
}

// FromUnixTime converts seconds, or milliseconds, since the Unix epoch to a UTC calendar time. Timestamps
// before the epoch round down to the previous whole second.
func FromUnixTime(timestamp int64, milliseconds bool) DateTime {
	var t time.Time
	if milliseconds {
		t = time.UnixMilli(timestamp)
	} else {
		t = time.Unix(timestamp, 0)
	}
	t = t.UTC()

	return DateTime{
		Year:   int32(t.Year()),
		Month:  uint32(t.Month()),
		Day:    uint32(t.Day()),
		Hour:   uint32(t.Hour()),
		Minute: uint32(t.Minute()),
		Second: uint32(t.Second()),
	}
}
