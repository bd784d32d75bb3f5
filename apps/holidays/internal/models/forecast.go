package models

import (
	"fmt"
	"time"
)

type Forecast struct {
	Date        time.Time
	Description string
}

func (forecast Forecast) String() string {
	return fmt.Sprintf("%s - %s", forecast.Date.Format(DateFormat), forecast.Description)
}

// WeekRange returns the Monday and Sunday of an ISO week.
func WeekRange(year int, week int) (time.Time, time.Time) {
	// January 4th always lies in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7 //nolint:mnd //days in a week
	monday := jan4.AddDate(0, 0, -offset+(week-1)*7)

	return monday, monday.AddDate(0, 0, 6) //nolint:mnd //days in a week
}
