package routes

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"time"

	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/go-resty/resty/v2"
	"github.com/kataras/iris/v12"
)

// Weather proxy for the site's weather widget. Fetching server-side keeps
// the API key out of the browser; responses are cached in Redis so the
// upstream is hit at most every ten minutes.

const (
	weatherCacheKey = "weather:current"
	weatherCacheTTL = 10 * time.Minute
	// Property coordinates
	weatherQuery = "43.6,19.0"
)

var weatherClient = resty.New().SetTimeout(10 * time.Second)

type weatherAPIResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

type WeatherData struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	UpdatedAt   string `json:"updatedAt"`
}

// GET /api/weather
func GetWeather(ctx iris.Context) {
	bg := context.Background()

	if cached, err := storage.Redis.Get(bg, weatherCacheKey).Result(); err == nil {
		var data WeatherData
		if json.Unmarshal([]byte(cached), &data) == nil {
			ctx.JSON(data)
			return
		}
	}

	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		utils.CreateError(iris.StatusServiceUnavailable, "Unavailable", "Weather service is not configured", ctx)
		return
	}

	var apiResp weatherAPIResponse
	resp, err := weatherClient.R().
		SetQueryParams(map[string]string{
			"key": apiKey,
			"q":   weatherQuery,
			"aqi": "no",
		}).
		SetResult(&apiResp).
		Get("https://api.weatherapi.com/v1/current.json")

	if err != nil || resp.IsError() {
		utils.CreateError(iris.StatusBadGateway, "Upstream Error", "Could not fetch weather data", ctx)
		return
	}

	data := WeatherData{
		Temperature: int(math.Round(apiResp.Current.TempC)),
		Condition:   apiResp.Current.Condition.Text,
		Humidity:    apiResp.Current.Humidity,
		WindSpeed:   int(math.Round(apiResp.Current.WindKph)),
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if encoded, err := json.Marshal(data); err == nil {
		storage.Redis.Set(bg, weatherCacheKey, encoded, weatherCacheTTL)
	}

	ctx.JSON(data)
}
