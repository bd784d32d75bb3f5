package holidays_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"holidays.xdoubleu.com/apps/holidays"
	"holidays.xdoubleu.com/apps/holidays/internal/dtos"
	"holidays.xdoubleu.com/apps/holidays/internal/mocks"
	"holidays.xdoubleu.com/apps/holidays/internal/repositories"
	"holidays.xdoubleu.com/internal/config"
)

//nolint:gochecknoglobals //needed for tests
var now = time.Date(2024, time.July, 3, 10, 0, 0, 0, time.UTC)

const seedFile = `{"holidays": [
	{"name": "New Year's Day", "date": "2024-01-01"},
	{"name": "Family Reunion", "date": "2024-07-06"}
]}`

func newTestApp(t *testing.T, content string, weatherErr error) *holidays.HolidayManager {
	t.Helper()

	dir := t.TempDir()
	holidaysFile := filepath.Join(dir, "holidays.json")
	require.Nil(t, os.WriteFile(holidaysFile, []byte(content), 0o600))

	//nolint:exhaustruct //other fields are optional
	cfg := config.Config{
		HolidaysFile:     holidaysFile,
		SaveFile:         filepath.Join(dir, "new_holidays.json"),
		ScrapeYearsBack:  2,
		ScrapeYearsAhead: 2,
		ScrapeWorkers:    2,
		WeatherAPIKey:    "key",
		WeatherLocation:  "minneapolis,us",
		WeatherDays:      7,
	}

	clients := holidays.Clients{
		TimeAndDate: mocks.NewMockTimeAndDateClient(2025),
		Weather:     mocks.NewMockWeatherClient(now, weatherErr),
	}

	return holidays.NewInner(logging.NewNopLogger(), cfg, clients, func() time.Time {
		return now
	})
}

func TestSeed(t *testing.T) {
	app := newTestApp(t, seedFile, nil)

	report, err := app.Seed(context.Background())
	require.Nil(t, err)

	// 2 from file + 2 per scraped year (2025 fails), New Year's Day 2024 twice
	assert.Equal(t, 9, app.Count())
	assert.Equal(t, 8, report.Added())
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, 2025, report.Failed()[0].Year)
	assert.False(t, app.Dirty())
}

func TestSeedInvalidFile(t *testing.T) {
	app := newTestApp(t, `{"holidays": [{"name": "Bad", "date": "July 4th"}]}`, nil)

	_, err := app.Seed(context.Background())
	assert.NotNil(t, err)
	assert.Equal(t, 0, app.Count())
}

func TestSeedFederal(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	app.Config.SeedFederal = true

	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	assert.GreaterOrEqual(t, app.Count(), 56)

	result := app.Handle(context.Background(), dtos.ViewWeek{Year: 2024, Week: 48})
	require.Len(t, result.Holidays, 1)
	assert.Equal(t, "2024-11-28", result.Holidays[0].Date().Format("2006-01-02"))
}

func TestAddAndRemove(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	result := app.Handle(context.Background(), dtos.AddHoliday{
		Name: "Talk Like a Pirate Day",
		Date: "2024-09-19",
	})
	require.Nil(t, result.Err)
	assert.Equal(
		t,
		"Talk Like a Pirate Day (2024-09-19) has been added to the holiday list",
		result.Message,
	)
	assert.Equal(t, 10, app.Count())
	assert.True(t, app.Dirty())

	result = app.Handle(context.Background(), dtos.RemoveHoliday{
		Name: "Talk Like a Pirate Day",
		Date: "2024-09-19",
	})
	require.Nil(t, result.Err)
	assert.Equal(t, 9, app.Count())

	result = app.Handle(context.Background(), dtos.RemoveHoliday{
		Name: "Talk Like a Pirate Day",
		Date: "2024-09-19",
	})
	assert.ErrorContains(t, result.Err, "holiday not found")
	assert.Equal(t, 9, app.Count())
}

func TestAddInvalid(t *testing.T) {
	app := newTestApp(t, seedFile, nil)

	result := app.Handle(context.Background(), dtos.AddHoliday{Name: "", Date: "tomorrow"})
	assert.ErrorIs(t, result.Err, holidays.ErrValidation)
	assert.Equal(t, "validation failed: date must be a date in YYYY-MM-DD form, name must be provided", result.Err.Error())
	assert.Equal(t, 0, app.Count())
	assert.False(t, app.Dirty())
}

func TestSave(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	app.Handle(context.Background(), dtos.AddHoliday{Name: "Pi Day", Date: "2024-03-14"})
	require.True(t, app.Dirty())

	result := app.Handle(context.Background(), dtos.Save{})
	require.Nil(t, result.Err)
	assert.False(t, app.Dirty())

	saved, err := repositories.New(logging.NewNopLogger()).Holidays.Load(app.Config.SaveFile)
	require.Nil(t, err)
	assert.Len(t, saved, 10)
}

func TestSaveFailure(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	app.Config.SaveFile = filepath.Join(t.TempDir(), "missing", "out.json")

	app.Handle(context.Background(), dtos.AddHoliday{Name: "Pi Day", Date: "2024-03-14"})
	result := app.Handle(context.Background(), dtos.Save{})

	assert.NotNil(t, result.Err)
	assert.True(t, app.Dirty())
}

func TestViewWeek(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	result := app.Handle(context.Background(), dtos.ViewWeek{Year: 2024, Week: 27})
	require.Nil(t, result.Err)
	require.Len(t, result.Holidays, 2)
	assert.Equal(t, "Family Reunion (2024-07-06)", result.Holidays[0].String())
	assert.Equal(t, "Independence Day (2024-07-04)", result.Holidays[1].String())
	assert.Empty(t, result.Forecast)

	result = app.Handle(context.Background(), dtos.ViewWeek{Year: 2024, Week: 1})
	require.Nil(t, result.Err)
	require.Len(t, result.Holidays, 1)
}

func TestViewCurrentWeekWithWeather(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	result := app.Handle(context.Background(), dtos.ViewWeek{Year: 2024, Weather: true})
	require.Nil(t, result.Err)
	assert.Equal(t, "Holidays in week 27 of 2024", result.Message)
	assert.Len(t, result.Holidays, 2)

	// July 3rd up to and including Sunday July 7th
	require.Len(t, result.Forecast, 5)
	assert.Equal(t, "2024-07-03 - clear sky", result.Forecast[0].String())
}

func TestViewWeekWeatherFailure(t *testing.T) {
	app := newTestApp(t, seedFile, errors.New("service unavailable"))
	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	result := app.Handle(context.Background(), dtos.ViewWeek{Year: 2024, Week: 27, Weather: true})
	assert.ErrorContains(t, result.Err, "service unavailable")
	assert.Len(t, result.Holidays, 2)
}

func TestExit(t *testing.T) {
	app := newTestApp(t, seedFile, nil)
	_, err := app.Seed(context.Background())
	require.Nil(t, err)

	result := app.Handle(context.Background(), dtos.Exit{})
	assert.True(t, result.Done)

	app.Handle(context.Background(), dtos.AddHoliday{Name: "Pi Day", Date: "2024-03-14"})

	result = app.Handle(context.Background(), dtos.Exit{})
	assert.ErrorIs(t, result.Err, holidays.ErrUnsavedChanges)
	assert.False(t, result.Done)

	result = app.Handle(context.Background(), dtos.Exit{Confirmed: true})
	assert.True(t, result.Done)
}

func TestUnknownIntent(t *testing.T) {
	app := newTestApp(t, seedFile, nil)

	result := app.Handle(context.Background(), &dtos.Save{})
	assert.ErrorIs(t, result.Err, holidays.ErrUnknownIntent)
}
