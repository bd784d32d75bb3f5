package holidays

import (
	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
	"holidays.xdoubleu.com/apps/holidays/pkg/weather"
)

type Clients struct {
	TimeAndDate timeanddate.Client
	Weather     weather.Client
}
