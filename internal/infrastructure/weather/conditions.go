package weather

const (
	ConditionSunny        = "sunny"
	ConditionPartlyCloudy = "partly-cloudy"
	ConditionCloudy       = "cloudy"
	ConditionRainy        = "rainy"
	ConditionStormy       = "stormy"
)

// weatherCodes buckets WMO weather codes into the condition values the
// rest of the system understands. Unknown codes fall back to
// partly-cloudy.
var weatherCodes = map[int]string{
	0:  ConditionSunny,
	1:  ConditionPartlyCloudy,
	2:  ConditionPartlyCloudy,
	3:  ConditionCloudy,
	45: ConditionCloudy,
	48: ConditionCloudy,
	51: ConditionRainy,
	53: ConditionRainy,
	55: ConditionRainy,
	56: ConditionRainy,
	57: ConditionRainy,
	61: ConditionRainy,
	63: ConditionRainy,
	65: ConditionRainy,
	66: ConditionRainy,
	67: ConditionRainy,
	71: ConditionCloudy,
	73: ConditionCloudy,
	75: ConditionCloudy,
	77: ConditionCloudy,
	80: ConditionRainy,
	81: ConditionRainy,
	82: ConditionStormy,
	85: ConditionCloudy,
	86: ConditionCloudy,
	95: ConditionStormy,
	96: ConditionStormy,
	99: ConditionStormy,
}

func MapWeatherCode(code int) string {
	condition, ok := weatherCodes[code]
	if !ok {
		return ConditionPartlyCloudy
	}
	return condition
}
