package dtos

import (
	"strings"
	"time"

	"holidays.xdoubleu.com/apps/holidays/internal/models"
)

// Intent is a request from the shell to the holiday manager.
type Intent interface {
	intent()
}

type AddHoliday struct {
	Name string
	Date string
}

type RemoveHoliday struct {
	Name string
	Date string
}

type Save struct{}

// ViewWeek shows an ISO week. A zero Week means the current week.
type ViewWeek struct {
	Year    int
	Week    int
	Weather bool
}

type Exit struct {
	Confirmed bool
}

func (AddHoliday) intent()    {}
func (RemoveHoliday) intent() {}
func (Save) intent()          {}
func (ViewWeek) intent()      {}
func (Exit) intent()          {}

func (dto *AddHoliday) Validate() (bool, map[string]string) {
	return validateNameAndDate(dto.Name, dto.Date)
}

func (dto *AddHoliday) Holiday() (models.Holiday, error) {
	return models.ParseHoliday(strings.TrimSpace(dto.Name), strings.TrimSpace(dto.Date))
}

func (dto *RemoveHoliday) Validate() (bool, map[string]string) {
	return validateNameAndDate(dto.Name, dto.Date)
}

func (dto *RemoveHoliday) ParsedDate() (time.Time, error) {
	return models.ParseDate(strings.TrimSpace(dto.Date))
}

func (dto *ViewWeek) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	if dto.Year < 1 {
		errs["year"] = "must be a positive year"
	}

	//nolint:mnd //ISO weeks
	if dto.Week < 0 || dto.Week > 53 {
		errs["week"] = "must be between 1 and 53"
	}

	return len(errs) == 0, errs
}

func validateNameAndDate(name string, date string) (bool, map[string]string) {
	errs := map[string]string{}

	if strings.TrimSpace(name) == "" {
		errs["name"] = "must be provided"
	}

	if _, err := models.ParseDate(strings.TrimSpace(date)); err != nil {
		errs["date"] = "must be a date in YYYY-MM-DD form"
	}

	return len(errs) == 0, errs
}
