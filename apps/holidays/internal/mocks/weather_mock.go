package mocks

import (
	"context"
	"time"

	"holidays.xdoubleu.com/apps/holidays/pkg/weather"
)

type MockWeatherClient struct {
	start time.Time
	err   error
}

// NewMockWeatherClient forecasts "clear sky" for every requested day,
// starting at start.
func NewMockWeatherClient(start time.Time, err error) weather.Client {
	return MockWeatherClient{
		start: start,
		err:   err,
	}
}

func (m MockWeatherClient) GetDailyForecast(
	_ context.Context,
	_ string,
	days int,
) (*weather.DailyForecastResponse, error) {
	if m.err != nil {
		return nil, m.err
	}

	response := &weather.DailyForecastResponse{List: []weather.Day{}}
	for i := range days {
		response.List = append(response.List, weather.Day{
			//nolint:mnd //noon
			Timestamp: m.start.AddDate(0, 0, i).Add(12 * time.Hour).Unix(),
			Weather: []weather.Condition{
				{Main: "Clear", Description: "clear sky"},
			},
		})
	}

	return response, nil
}
