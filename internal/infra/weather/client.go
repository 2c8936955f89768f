// Package weather implements service.WeatherProvider against an
// OpenWeatherMap compatible HTTP API.
package weather

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smartpack/config"
	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/paulmach/orb"
)

const (
	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"

	forecastDays = 5
	middayHour   = 12

	// metersPerSecondToKmh converts the metric wind speed of the API to km/h.
	metersPerSecondToKmh = 3.6
)

// ErrNotConfigured is returned when no API key is configured.
var ErrNotConfigured = errors.New("weather provider is not configured")

type condition struct {
	ID int `json:"id"`
}

type currentResponse struct {
	Name    string      `json:"name"`
	Weather []condition `json:"weather"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []condition `json:"weather"`
	Pop     float64     `json:"pop"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"` // Offset from UTC in seconds.
	} `json:"city"`
}

type apiError struct {
	Message string `json:"message"`
}

// Client fetches current conditions and a daily forecast.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ service.WeatherProvider = (*Client)(nil)

// NewClient creates a weather client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NewWeatherProvider creates the provider from configuration
func NewWeatherProvider(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
	return NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout, logger)
}

// Fetch returns the current weather and up to five daily forecasts at point.
func (c *Client) Fetch(ctx context.Context, point orb.Point) (*service.WeatherReport, error) {
	if c.apiKey == "" || c.baseURL == "" {
		return nil, errors.WithStack(ErrNotConfigured)
	}

	var current currentResponse
	if err := c.get(ctx, currentPath, point, &current); err != nil {
		return nil, err
	}

	var forecast forecastResponse
	if err := c.get(ctx, forecastPath, point, &forecast); err != nil {
		return nil, err
	}

	code := conditionID(current.Weather)
	report := &service.WeatherReport{
		LocationName:  current.Name,
		Country:       current.Sys.Country,
		Temperature:   round1(current.Main.Temp),
		ConditionCode: code,
		Condition:     MapCondition(code),
		Humidity:      current.Main.Humidity,
		Cloudiness:    current.Clouds.All,
		ChanceOfRain:  current.Clouds.All,
		WindSpeed:     round1(current.Wind.Speed * metersPerSecondToKmh),
		Forecast:      dailyForecast(forecast),
	}
	if len(forecast.List) > 0 {
		report.ChanceOfRain = math.Round(forecast.List[0].Pop * 100)
	}
	if report.LocationName == "" {
		report.LocationName = forecast.City.Name
	}
	if report.Country == "" {
		report.Country = forecast.City.Country
	}

	c.logger.Debug("[Weather] Fetched weather",
		slog.String("location", report.LocationName),
		slog.Int("condition_code", code),
		slog.Int("forecast_days", len(report.Forecast)),
	)

	return report, nil
}

func (c *Client) get(ctx context.Context, path string, point orb.Point, out any) error {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = jsoniter.ConfigFastest.Unmarshal(body, &apiErr)

		return errors.Errorf("weather API %s returned status %d: %s", path, resp.StatusCode, apiErr.Message)
	}

	if err := jsoniter.ConfigFastest.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}

	return nil
}

// dailyForecast keeps one entry per local day after the first day in the
// list, the one closest to midday, labelled "Tomorrow" then by weekday.
func dailyForecast(resp forecastResponse) []service.ForecastEntry {
	if len(resp.List) == 0 {
		return nil
	}

	zone := time.FixedZone("local", resp.City.Timezone)
	today := dayKey(time.Unix(resp.List[0].Dt, 0).In(zone))

	var (
		days    []service.ForecastEntry
		lastDay string
		bestGap = -1
	)

	for _, item := range resp.List {
		at := time.Unix(item.Dt, 0).In(zone)
		key := dayKey(at)
		if key == today {
			continue
		}

		gap := abs(at.Hour() - middayHour)
		entry := service.ForecastEntry{
			Day:          at.Weekday().String(),
			Temperature:  round1(item.Main.Temp),
			Condition:    MapCondition(conditionID(item.Weather)),
			ChanceOfRain: math.Round(item.Pop * 100),
		}

		switch {
		case key != lastDay:
			if len(days) == forecastDays {
				return labelTomorrow(days)
			}
			days = append(days, entry)
			lastDay, bestGap = key, gap
		case gap < bestGap:
			days[len(days)-1] = entry
			bestGap = gap
		}
	}

	return labelTomorrow(days)
}

func labelTomorrow(days []service.ForecastEntry) []service.ForecastEntry {
	if len(days) > 0 {
		days[0].Day = "Tomorrow"
	}

	return days
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func conditionID(conditions []condition) int {
	if len(conditions) == 0 {
		return 0
	}

	return conditions[0].ID
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
