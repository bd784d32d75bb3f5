// Package federal lists US federal holidays without any network access.
package federal

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

type Holiday struct {
	Name string
	Date time.Time
}

//nolint:gochecknoglobals //fixed calendar
var holidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ColumbusDay,
	us.VeteransDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// Holidays returns the actual (not observed) dates of the federal holidays
// in year, in calendar order.
func Holidays(year int) []Holiday {
	result := []Holiday{}

	for _, holiday := range holidays {
		actual, _ := holiday.Calc(year)
		if actual.IsZero() {
			continue
		}

		result = append(result, Holiday{
			Name: holiday.Name,
			Date: time.Date(actual.Year(), actual.Month(), actual.Day(), 0, 0, 0, 0, time.UTC),
		})
	}

	return result
}
