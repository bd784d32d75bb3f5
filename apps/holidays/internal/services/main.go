package services

import (
	"log/slog"
	"time"

	"holidays.xdoubleu.com/apps/holidays/internal/repositories"
	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
	"holidays.xdoubleu.com/apps/holidays/pkg/weather"
	"holidays.xdoubleu.com/internal/config"
)

type Services struct {
	Seed    *SeedService
	Weather *WeatherService
}

func New(
	logger *slog.Logger,
	config config.Config,
	repositories *repositories.Repositories,
	timeanddateClient timeanddate.Client,
	weatherClient weather.Client,
	now func() time.Time,
) *Services {
	seed := &SeedService{
		logger:     logger,
		holidays:   repositories.Holidays,
		client:     timeanddateClient,
		now:        now,
		yearsBack:  config.ScrapeYearsBack,
		yearsAhead: config.ScrapeYearsAhead,
		workers:    config.ScrapeWorkers,
	}
	weather := &WeatherService{
		logger:   logger,
		client:   weatherClient,
		apiKey:   config.WeatherAPIKey,
		location: config.WeatherLocation,
		days:     config.WeatherDays,
	}

	return &Services{
		Seed:    seed,
		Weather: weather,
	}
}
