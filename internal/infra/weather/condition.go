package weather

import (
	"smartpack/internal/domain/entity"
)

// MapCondition maps an OpenWeatherMap condition id to the three conditions the
// app displays. Thunderstorm, drizzle and rain are rainy, clear sky is sunny,
// everything else (clouds, snow, atmosphere) is cloudy.
func MapCondition(code int) entity.Condition {
	switch {
	case code == 800:
		return entity.ConditionSunny
	case code >= 801 && code <= 804:
		return entity.ConditionCloudy
	case code >= 200 && code <= 232,
		code >= 300 && code <= 321,
		code >= 500 && code <= 531:
		return entity.ConditionRainy
	default:
		return entity.ConditionCloudy
	}
}
