//nolint:mnd //magic numbers
package mocks

import (
	"context"
	"errors"
	"time"

	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
)

type MockTimeAndDateClient struct {
	failing map[int]bool
}

// NewMockTimeAndDateClient returns two holidays and one broken row for
// every year, except for the failing years which return an error.
func NewMockTimeAndDateClient(failingYears ...int) timeanddate.Client {
	failing := map[int]bool{}
	for _, year := range failingYears {
		failing[year] = true
	}

	return MockTimeAndDateClient{failing: failing}
}

func (m MockTimeAndDateClient) GetHolidays(
	_ context.Context,
	year int,
) (*timeanddate.Table, error) {
	if m.failing[year] {
		return nil, errors.New("connection reset by peer")
	}

	return &timeanddate.Table{
		Year: year,
		Entries: []timeanddate.Entry{
			{
				Name: "New Year's Day",
				Date: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				Name: "Independence Day",
				Date: time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC),
			},
		},
		Skipped: []timeanddate.SkippedRow{
			{Row: 3, Reason: "Leap Day: invalid date"},
		},
	}, nil
}
