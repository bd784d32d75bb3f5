package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"holidays.xdoubleu.com/apps/holidays/internal/models"
	"holidays.xdoubleu.com/apps/holidays/internal/repositories"
	"holidays.xdoubleu.com/apps/holidays/pkg/federal"
	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
)

type SeedService struct {
	logger     *slog.Logger
	holidays   *repositories.FileRepository
	client     timeanddate.Client
	now        func() time.Time
	yearsBack  int
	yearsAhead int
	workers    int
}

// LoadFile adds every holiday stored at path, or none when the file
// cannot be read completely.
func (service *SeedService) LoadFile(list *models.HolidayList, path string) error {
	service.logger.Info(fmt.Sprintf("seeding list from %s", path))

	holidays, err := service.holidays.Load(path)
	if err != nil {
		return err
	}

	return list.AddAll(holidays)
}

func (service *SeedService) SaveFile(list *models.HolidayList, path string) error {
	return service.holidays.Save(path, list.All())
}

// Years is the scrape window around the current year.
func (service *SeedService) Years() []int {
	current := service.now().Year()

	years := []int{}
	for year := current - service.yearsBack; year <= current+service.yearsAhead; year++ {
		years = append(years, year)
	}

	return years
}

// SeedFederal adds the US federal holidays for every year of the window.
func (service *SeedService) SeedFederal(list *models.HolidayList) error {
	holidays := []models.Holiday{}

	for _, year := range service.Years() {
		for _, entry := range federal.Holidays(year) {
			holiday, err := models.NewHoliday(entry.Name, entry.Date)
			if err != nil {
				return err
			}

			holidays = append(holidays, holiday)
		}
	}

	return list.AddAll(holidays)
}

type yearResult struct {
	holidays []models.Holiday
	outcome  models.YearOutcome
}

// Scrape fetches all years of the window in parallel. A failing year is
// reported and skipped; holidays are added in year order once every
// fetch is done.
func (service *SeedService) Scrape(
	ctx context.Context,
	list *models.HolidayList,
) models.ScrapeReport {
	years := service.Years()
	service.logger.Info(fmt.Sprintf(
		"scraping holidays for %d - %d",
		years[0],
		years[len(years)-1],
	))

	workers := min(max(service.workers, 1), len(years))
	workerPool := threading.NewWorkerPool(service.logger, workers, len(years))

	mu := sync.Mutex{}
	results := make([]yearResult, len(years))
	for i, year := range years {
		workerPool.EnqueueWork(func(_ context.Context, _ *slog.Logger) error {
			result := service.scrapeYear(ctx, year)

			mu.Lock()
			results[i] = result
			mu.Unlock()

			return nil
		})
	}

	workerPool.WaitUntilDone()

	report := models.ScrapeReport{Outcomes: []models.YearOutcome{}}
	for _, result := range results {
		if err := list.AddAll(result.holidays); err != nil {
			result.outcome.Added = 0
			result.outcome.Err = err
		}

		if result.outcome.Failed() {
			service.logger.Warn(
				fmt.Sprintf("skipping holidays of %d", result.outcome.Year),
				logging.ErrAttr(result.outcome.Err),
			)
		}

		report.Outcomes = append(report.Outcomes, result.outcome)
	}

	return report
}

func (service *SeedService) scrapeYear(ctx context.Context, year int) yearResult {
	result := yearResult{
		holidays: []models.Holiday{},
		outcome:  models.YearOutcome{Year: year},
	}

	table, err := service.client.GetHolidays(ctx, year)
	if err != nil {
		result.outcome.Err = err
		return result
	}

	for _, skipped := range table.Skipped {
		service.logger.Warn(fmt.Sprintf(
			"skipping row %d of %d: %s",
			skipped.Row,
			year,
			skipped.Reason,
		))
	}
	result.outcome.Skipped = len(table.Skipped)

	for _, entry := range table.Entries {
		holiday, errIn := models.NewHoliday(entry.Name, entry.Date)
		if errIn != nil {
			service.logger.Warn(
				fmt.Sprintf("skipping holiday of %d", year),
				logging.ErrAttr(errIn),
			)
			result.outcome.Skipped++
			continue
		}

		result.holidays = append(result.holidays, holiday)
	}
	result.outcome.Added = len(result.holidays)

	return result
}
