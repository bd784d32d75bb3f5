package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateFormat = "2006-01-02"

var ErrInvalidHoliday = errors.New("invalid holiday")

// Holiday is a named calendar date without time of day. Only NewHoliday
// and ParseHoliday produce valid values.
type Holiday struct {
	name string
	date time.Time
}

func NewHoliday(name string, date time.Time) (Holiday, error) {
	if strings.TrimSpace(name) == "" {
		return Holiday{}, fmt.Errorf("%w: name is empty", ErrInvalidHoliday)
	}

	if date.IsZero() {
		return Holiday{}, fmt.Errorf("%w: %s has no date", ErrInvalidHoliday, name)
	}

	return Holiday{
		name: name,
		date: Day(date),
	}, nil
}

func ParseHoliday(name string, date string) (Holiday, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return Holiday{}, err
	}

	return NewHoliday(name, parsed)
}

// ParseDate only accepts YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"%w: date %q is not in YYYY-MM-DD form",
			ErrInvalidHoliday,
			value,
		)
	}

	return parsed, nil
}

// Day strips the time of day and location from t.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (h Holiday) Name() string {
	return h.name
}

func (h Holiday) Date() time.Time {
	return h.date
}

func (h Holiday) Matches(name string, date time.Time) bool {
	return h.name == name && h.date.Equal(Day(date))
}

func (h Holiday) Key() string {
	return h.name + "|" + h.date.Format(DateFormat)
}

func (h Holiday) String() string {
	return fmt.Sprintf("%s (%s)", h.name, h.date.Format(DateFormat))
}
