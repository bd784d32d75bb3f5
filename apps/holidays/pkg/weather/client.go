package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

const BaseURLRESTAPI = "https://community-open-weather-map.p.rapidapi.com"
const DefaultHost = "community-open-weather-map.p.rapidapi.com"

type client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	units      string
}

func New(
	logger *slog.Logger,
	baseURL string,
	host string,
	apiKey string,
	units string,
	timeout time.Duration,
) Client {
	if baseURL == "" {
		baseURL = BaseURLRESTAPI
	}

	if host == "" {
		host = DefaultHost
	}

	return client{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		host:       host,
		apiKey:     apiKey,
		units:      units,
	}
}

func (client client) GetDailyForecast(
	ctx context.Context,
	location string,
	days int,
) (*DailyForecastResponse, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("cnt", strconv.Itoa(days))
	if client.units != "" {
		query.Set("units", client.units)
	}

	var forecast DailyForecastResponse
	err := client.sendRequest(ctx, "forecast/daily", query, &forecast)
	if err != nil {
		return nil, err
	}

	return &forecast, nil
}

func (client client) sendRequest(
	ctx context.Context,
	endpoint string,
	query url.Values,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", client.baseURL, endpoint))
	if err != nil {
		return err
	}

	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("X-RapidAPI-Host", client.host)
	req.Header.Set("X-RapidAPI-Key", client.apiKey)
	req.Header.Set("Accept", "application/json")

	client.logger.Debug(fmt.Sprintf("requesting forecast from %s", u.Host))

	res, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 from weather service: %d", res.StatusCode)
	}

	return httptools.ReadJSON(res.Body, dst)
}
