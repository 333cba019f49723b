package dto

type CurrentWeatherResponse struct {
	City        string `json:"city"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
}

type ForecastResponse struct {
	Location LocationResponse `json:"location"`
	Daily    []DailyForecast  `json:"daily"`
}

type LocationResponse struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DailyForecast struct {
	Date      string `json:"date"`
	MaxTemp   int    `json:"maxTemp"`
	MinTemp   int    `json:"minTemp"`
	Condition string `json:"condition"`
	Humidity  int    `json:"humidity"`
	WindSpeed int    `json:"windSpeed"`
}

type CurrencyConversionResponse struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted"`
	Rate      float64 `json:"rate"`
}
