package timeanddate

import "context"

type Client interface {
	GetHolidays(ctx context.Context, year int) (*Table, error)
}
