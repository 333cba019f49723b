package service

// currencyRates holds static USD-relative rates for the travel currency
// converter.
var currencyRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 150.0,
	"INR": 83.0,
	"AUD": 1.5,
	"CAD": 1.35,
	"CHF": 0.88,
	"CNY": 7.2,
	"THB": 35.0,
	"SGD": 1.35,
	"AED": 3.67,
	"TRY": 32.0,
	"EGY": 48.0,
	"ZAR": 18.5,
}
