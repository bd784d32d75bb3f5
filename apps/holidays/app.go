package holidays

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"holidays.xdoubleu.com/apps/holidays/internal/models"
	"holidays.xdoubleu.com/apps/holidays/internal/repositories"
	"holidays.xdoubleu.com/apps/holidays/internal/services"
	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
	"holidays.xdoubleu.com/apps/holidays/pkg/weather"
	"holidays.xdoubleu.com/internal/config"
)

type HolidayManager struct {
	logger       *slog.Logger
	Config       config.Config
	clients      Clients
	now          func() time.Time
	list         *models.HolidayList
	dirty        bool
	Services     *services.Services
	Repositories *repositories.Repositories
}

func New(logger *slog.Logger, cfg config.Config) *HolidayManager {
	clients := Clients{
		TimeAndDate: timeanddate.New(logger, cfg.ScrapeURL, cfg.Timeout()),
		Weather: weather.New(
			logger,
			cfg.WeatherURL,
			cfg.WeatherHost,
			cfg.WeatherAPIKey,
			cfg.WeatherUnits,
			cfg.Timeout(),
		),
	}

	return NewInner(logger, cfg, clients, time.Now)
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	clients Clients,
	now func() time.Time,
) *HolidayManager {
	//nolint:exhaustruct //other fields are optional
	app := &HolidayManager{
		logger:  logger,
		Config:  cfg,
		clients: clients,
		now:     now,
	}

	app.list = models.NewHolidayList(func(holiday models.Holiday) {
		app.logger.Debug(fmt.Sprintf("%s has been added to the holiday list", holiday))
	})

	app.Repositories = repositories.New(logger)
	app.Services = services.New(
		logger,
		cfg,
		app.Repositories,
		clients.TimeAndDate,
		clients.Weather,
		now,
	)

	return app
}

// Seed fills the list from the holidays file, the federal calendar when
// enabled and the scraped yearly tables, then drops duplicates. Only a
// failing holidays file is fatal.
func (app *HolidayManager) Seed(ctx context.Context) (models.ScrapeReport, error) {
	err := app.Services.Seed.LoadFile(app.list, app.Config.HolidaysFile)
	if err != nil {
		return models.ScrapeReport{}, err
	}

	if app.Config.SeedFederal {
		err = app.Services.Seed.SeedFederal(app.list)
		if err != nil {
			return models.ScrapeReport{}, err
		}
	}

	report := app.Services.Seed.Scrape(ctx, app.list)
	for _, outcome := range report.Failed() {
		app.logger.Warn(
			fmt.Sprintf("no holidays scraped for %d", outcome.Year),
			logging.ErrAttr(outcome.Err),
		)
	}

	removed := app.list.Deduplicate()
	app.logger.Info(fmt.Sprintf(
		"seeded %d holidays (%d duplicates removed)",
		app.list.Count(),
		removed,
	))

	app.dirty = false

	return report, nil
}

func (app *HolidayManager) Count() int {
	return app.list.Count()
}

// Dirty reports whether the list changed since it was seeded or saved.
func (app *HolidayManager) Dirty() bool {
	return app.dirty
}

func (app *HolidayManager) GetName() string {
	return "holidays"
}
