package holidays

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"holidays.xdoubleu.com/apps/holidays/internal/dtos"
	"holidays.xdoubleu.com/apps/holidays/internal/models"
)

// Intents and the values in a Result, for callers outside this app.
type (
	Intent        = dtos.Intent
	AddHoliday    = dtos.AddHoliday
	RemoveHoliday = dtos.RemoveHoliday
	Save          = dtos.Save
	ViewWeek      = dtos.ViewWeek
	Exit          = dtos.Exit
	Holiday       = models.Holiday
	Forecast      = models.Forecast
	ScrapeReport  = models.ScrapeReport
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrUnsavedChanges = errors.New("there are unsaved changes")
	ErrUnknownIntent  = errors.New("unknown intent")
	ErrNotFound       = models.ErrNotFound
)

// Result is the answer to an Intent. Err is set when the intent failed,
// possibly alongside partial output like the holidays of a week whose
// forecast could not be fetched.
type Result struct {
	Message  string
	Holidays []models.Holiday
	Forecast []models.Forecast
	Err      error
	Done     bool
}

func (app *HolidayManager) Handle(ctx context.Context, intent Intent) Result {
	switch intent := intent.(type) {
	case dtos.AddHoliday:
		return app.addHoliday(intent)
	case dtos.RemoveHoliday:
		return app.removeHoliday(intent)
	case dtos.Save:
		return app.save()
	case dtos.ViewWeek:
		return app.viewWeek(ctx, intent)
	case dtos.Exit:
		return app.exit(intent)
	default:
		return Result{Err: fmt.Errorf("%w: %T", ErrUnknownIntent, intent)}
	}
}

func (app *HolidayManager) addHoliday(dto dtos.AddHoliday) Result {
	if ok, errs := dto.Validate(); !ok {
		return Result{Err: validationError(errs)}
	}

	holiday, err := dto.Holiday()
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %w", ErrValidation, err)}
	}

	if err = app.list.Add(holiday); err != nil {
		return Result{Err: err}
	}

	app.dirty = true

	return Result{
		Message:  fmt.Sprintf("%s has been added to the holiday list", holiday),
		Holidays: []models.Holiday{holiday},
	}
}

func (app *HolidayManager) removeHoliday(dto dtos.RemoveHoliday) Result {
	if ok, errs := dto.Validate(); !ok {
		return Result{Err: validationError(errs)}
	}

	date, err := dto.ParsedDate()
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %w", ErrValidation, err)}
	}

	name := strings.TrimSpace(dto.Name)
	if err = app.list.Remove(name, date); err != nil {
		return Result{Err: err}
	}

	app.dirty = true

	return Result{
		Message: fmt.Sprintf("%s has been removed from the holiday list", name),
	}
}

func (app *HolidayManager) save() Result {
	path := app.Config.SaveFile

	if err := app.Services.Seed.SaveFile(app.list, path); err != nil {
		app.logger.Error("failed to save holidays", logging.ErrAttr(err))
		return Result{Err: err}
	}

	app.dirty = false

	return Result{
		Message: fmt.Sprintf("Your changes have been saved to %s.", path),
	}
}

func (app *HolidayManager) viewWeek(ctx context.Context, dto dtos.ViewWeek) Result {
	if ok, errs := dto.Validate(); !ok {
		return Result{Err: validationError(errs)}
	}

	year, week := dto.Year, dto.Week
	if week == 0 {
		year, week = app.now().ISOWeek()
	}

	result := Result{
		Message:  fmt.Sprintf("Holidays in week %d of %d", week, year),
		Holidays: app.list.FilterByWeek(year, week),
	}

	if !dto.Weather {
		return result
	}

	forecast, err := app.Services.Weather.ForWeek(ctx, year, week)
	if err != nil {
		app.logger.Warn("failed to fetch weather", logging.ErrAttr(err))
		result.Err = err
		return result
	}

	result.Forecast = forecast

	return result
}

func (app *HolidayManager) exit(dto dtos.Exit) Result {
	if app.dirty && !dto.Confirmed {
		return Result{Err: ErrUnsavedChanges}
	}

	return Result{Message: "Goodbye", Done: true}
}

func validationError(errs map[string]string) error {
	parts := []string{}
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		parts = append(parts, fmt.Sprintf("%s %s", field, errs[field]))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(parts, ", "))
}
