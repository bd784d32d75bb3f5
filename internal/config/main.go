//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xhit/go-str2duration/v2"
	"holidays.xdoubleu.com/apps/holidays/pkg/timeanddate"
	"holidays.xdoubleu.com/apps/holidays/pkg/weather"
)

type Config struct {
	Env              string
	HolidaysFile     string
	SaveFile         string
	HistoryFile      string
	ScrapeURL        string
	ScrapeYearsBack  int
	ScrapeYearsAhead int
	ScrapeWorkers    int
	SeedFederal      bool
	HTTPTimeout      string
	WeatherURL       string
	WeatherHost      string
	WeatherAPIKey    string
	WeatherLocation  string
	WeatherUnits     string
	WeatherDays      int
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)

	cfg.HolidaysFile = parser.EnvStr("HOLIDAYS_FILE", "holidays.json")
	cfg.SaveFile = parser.EnvStr("SAVE_FILE", "new_holidays.json")
	cfg.HistoryFile = parser.EnvStr("HISTORY_FILE", "")

	cfg.ScrapeURL = parser.EnvStr("SCRAPE_URL", timeanddate.BaseURL)
	cfg.ScrapeYearsBack = parser.EnvInt("SCRAPE_YEARS_BACK", 2)
	cfg.ScrapeYearsAhead = parser.EnvInt("SCRAPE_YEARS_AHEAD", 2)
	cfg.ScrapeWorkers = parser.EnvInt("SCRAPE_WORKERS", 5)
	cfg.SeedFederal = parser.EnvBool("SEED_FEDERAL", false)
	cfg.HTTPTimeout = parser.EnvStr("HTTP_TIMEOUT", "10s")

	cfg.WeatherURL = parser.EnvStr("WEATHER_URL", weather.BaseURLRESTAPI)
	cfg.WeatherHost = parser.EnvStr("WEATHER_HOST", weather.DefaultHost)
	cfg.WeatherAPIKey = parser.EnvStr("WEATHER_API_KEY", "")
	cfg.WeatherLocation = parser.EnvStr("WEATHER_LOCATION", "minneapolis,us")
	cfg.WeatherUnits = parser.EnvStr("WEATHER_UNITS", "imperial")
	cfg.WeatherDays = parser.EnvInt("WEATHER_DAYS", 16)

	return cfg
}

// Timeout parses HTTPTimeout, falling back to ten seconds when it is
// not a valid duration.
func (cfg Config) Timeout() time.Duration {
	timeout, err := str2duration.ParseDuration(cfg.HTTPTimeout)
	if err != nil || timeout <= 0 {
		return 10 * time.Second
	}

	return timeout
}
