package weather

import "context"

type Client interface {
	GetDailyForecast(ctx context.Context, location string, days int) (*DailyForecastResponse, error)
}
