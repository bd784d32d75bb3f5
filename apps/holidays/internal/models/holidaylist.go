package models

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"
)

var ErrNotFound = errors.New("holiday not found")

// Notifier receives every holiday that was added to a HolidayList.
type Notifier func(holiday Holiday)

// HolidayList is an ordered collection of holidays. Duplicates are kept
// until Deduplicate is called. It is not safe for concurrent use.
type HolidayList struct {
	holidays []Holiday
	notify   Notifier
}

func NewHolidayList(notify Notifier) *HolidayList {
	return &HolidayList{
		holidays: []Holiday{},
		notify:   notify,
	}
}

func (list *HolidayList) Add(holiday Holiday) error {
	return list.AddAll([]Holiday{holiday})
}

// AddAll appends either all holidays or none of them.
func (list *HolidayList) AddAll(holidays []Holiday) error {
	for i, holiday := range holidays {
		if holiday.name == "" {
			return fmt.Errorf("%w: element %d is empty", ErrInvalidHoliday, i)
		}
	}

	list.holidays = append(list.holidays, holidays...)

	if list.notify != nil {
		for _, holiday := range holidays {
			list.notify(holiday)
		}
	}

	return nil
}

func (list *HolidayList) Find(name string, date time.Time) (Holiday, bool) {
	i := list.indexOf(name, date)
	if i < 0 {
		return Holiday{}, false
	}

	return list.holidays[i], true
}

func (list *HolidayList) Remove(name string, date time.Time) error {
	i := list.indexOf(name, date)
	if i < 0 {
		return fmt.Errorf(
			"%w: %s (%s)",
			ErrNotFound,
			name,
			Day(date).Format(DateFormat),
		)
	}

	list.holidays = slices.Delete(list.holidays, i, i+1)
	return nil
}

func (list *HolidayList) Count() int {
	return len(list.holidays)
}

// All returns a copy of the holidays in insertion order.
func (list *HolidayList) All() []Holiday {
	return slices.Clone(list.holidays)
}

// Week yields the holidays that fall in the given ISO week. The year is
// the ISO week-year, so 2023-01-01 belongs to week 52 of 2022.
func (list *HolidayList) Week(year int, week int) iter.Seq[Holiday] {
	return func(yield func(Holiday) bool) {
		for _, holiday := range list.holidays {
			y, w := holiday.date.ISOWeek()
			if y != year || w != week {
				continue
			}

			if !yield(holiday) {
				return
			}
		}
	}
}

func (list *HolidayList) FilterByWeek(year int, week int) []Holiday {
	result := slices.Collect(list.Week(year, week))
	if result == nil {
		return []Holiday{}
	}

	return result
}

// Deduplicate keeps the first occurrence of every (name, date) pair and
// returns how many holidays were dropped.
func (list *HolidayList) Deduplicate() int {
	seen := make(map[string]struct{}, len(list.holidays))
	kept := make([]Holiday, 0, len(list.holidays))

	for _, holiday := range list.holidays {
		key := holiday.Key()
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, holiday)
	}

	removed := len(list.holidays) - len(kept)
	list.holidays = kept

	return removed
}

func (list *HolidayList) indexOf(name string, date time.Time) int {
	return slices.IndexFunc(list.holidays, func(holiday Holiday) bool {
		return holiday.Matches(name, date)
	})
}
