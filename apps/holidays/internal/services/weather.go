package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"holidays.xdoubleu.com/apps/holidays/internal/models"
	"holidays.xdoubleu.com/apps/holidays/pkg/weather"
)

var ErrWeatherNotConfigured = errors.New("weather lookup is not configured")

type WeatherService struct {
	logger   *slog.Logger
	client   weather.Client
	apiKey   string
	location string
	days     int
}

// ForWeek returns the forecast for the days of an ISO week that the
// forecast service covers.
func (service *WeatherService) ForWeek(
	ctx context.Context,
	year int,
	week int,
) ([]models.Forecast, error) {
	if service.apiKey == "" {
		return nil, ErrWeatherNotConfigured
	}

	start, end := models.WeekRange(year, week)

	response, err := service.client.GetDailyForecast(ctx, service.location, service.days)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast for %s: %w", service.location, err)
	}

	result := []models.Forecast{}
	for _, day := range response.List {
		date := models.Day(day.Time())
		if date.Before(start) || date.After(end) {
			continue
		}

		result = append(result, models.Forecast{
			Date:        date,
			Description: day.Description(),
		})
	}

	service.logger.Debug(fmt.Sprintf(
		"%d of %d forecast days fall in week %d of %d",
		len(result),
		len(response.List),
		week,
		year,
	))

	return result, nil
}
