package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"

	"travelmate-api/config"
	"travelmate-api/pkg/errs"
	"travelmate-api/pkg/httpclient"
)

const requestTimeout = 5 * time.Second

type Location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

type CurrentConditions struct {
	Temperature int
	Condition   string
	Humidity    int
	WindSpeed   int
}

type DailyConditions struct {
	Date      string
	MaxTemp   int
	MinTemp   int
	Condition string
	Humidity  int
	WindSpeed int
}

type OpenMeteoClient struct {
	geocodingHost string
	forecastHost  string
	cb            *gobreaker.CircuitBreaker[[]byte]
}

func CreateOpenMeteoClient(cfg config.WeatherConfig, cb *gobreaker.CircuitBreaker[[]byte]) *OpenMeteoClient {
	return &OpenMeteoClient{
		geocodingHost: cfg.GeocodingHost,
		forecastHost:  cfg.ForecastHost,
		cb:            cb,
	}
}

func (c *OpenMeteoClient) GeocodeCity(ctx context.Context, city string) (loc Location, err error) {
	reqURL := fmt.Sprintf("%s/v1/search?name=%s&count=1&language=en", c.geocodingHost, url.QueryEscape(city))

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return loc, err
	}

	var payload geocodeResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GeocodeCity").Msg("")
		return loc, errs.ErrWeatherUnavailable
	}

	if len(payload.Results) == 0 {
		return loc, errs.ErrCityNotFound
	}

	place := payload.Results[0]
	loc = Location{
		Name:      place.Name,
		Country:   place.Country,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
	}

	return loc, nil
}

func (c *OpenMeteoClient) CurrentWeather(ctx context.Context, loc Location) (cur CurrentConditions, err error) {
	reqURL := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code&timezone=auto",
		c.forecastHost, loc.Latitude, loc.Longitude)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return cur, err
	}

	var payload forecastResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CurrentWeather").Msg("")
		return cur, errs.ErrWeatherUnavailable
	}

	cur = CurrentConditions{
		Temperature: roundToInt(payload.Current.Temperature),
		Condition:   MapWeatherCode(payload.Current.WeatherCode),
		Humidity:    roundToInt(payload.Current.Humidity),
		WindSpeed:   roundToInt(payload.Current.WindSpeed),
	}

	return cur, nil
}

func (c *OpenMeteoClient) Forecast(ctx context.Context, loc Location, days int) (daily []DailyConditions, err error) {
	reqURL := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&daily=temperature_2m_max,temperature_2m_min,weather_code,wind_speed_10m_max,relative_humidity_2m_mean&forecast_days=%d&timezone=auto",
		c.forecastHost, loc.Latitude, loc.Longitude, days)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var payload forecastResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Forecast").Msg("")
		return nil, errs.ErrWeatherUnavailable
	}

	for i, date := range payload.Daily.Time {
		day := DailyConditions{Date: date}
		if i < len(payload.Daily.MaxTemp) {
			day.MaxTemp = roundToInt(payload.Daily.MaxTemp[i])
		}
		if i < len(payload.Daily.MinTemp) {
			day.MinTemp = roundToInt(payload.Daily.MinTemp[i])
		}
		if i < len(payload.Daily.WeatherCode) {
			day.Condition = MapWeatherCode(payload.Daily.WeatherCode[i])
		}
		if i < len(payload.Daily.WindSpeed) {
			day.WindSpeed = roundToInt(payload.Daily.WindSpeed[i])
		}
		if i < len(payload.Daily.Humidity) {
			day.Humidity = roundToInt(payload.Daily.Humidity[i])
		}
		daily = append(daily, day)
	}

	return daily, nil
}

func (c *OpenMeteoClient) get(ctx context.Context, reqURL string) ([]byte, error) {
	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, reqErr := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:     reqURL,
			Method:  http.MethodGet,
			Timeout: requestTimeout,
		})
		if reqErr != nil {
			return nil, reqErr
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "OpenMeteoClient").Msg("")
		return nil, errs.ErrWeatherUnavailable
	}

	return body, nil
}

func roundToInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time        []string  `json:"time"`
		MaxTemp     []float64 `json:"temperature_2m_max"`
		MinTemp     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weather_code"`
		WindSpeed   []float64 `json:"wind_speed_10m_max"`
		Humidity    []float64 `json:"relative_humidity_2m_mean"`
	} `json:"daily"`
}
