package models

import "fmt"

// Location identifies the place a report was produced for
type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localTime"` // provider's local clock, "2006-01-02 15:04"
}

// CurrentConditions is a snapshot of the weather right now
type CurrentConditions struct {
	Condition  string  `json:"condition"`
	TempC      float64 `json:"tempC"`
	TempF      float64 `json:"tempF"`
	FeelsLikeC float64 `json:"feelsLikeC"`
	FeelsLikeF float64 `json:"feelsLikeF"`
	UV         float64 `json:"uv"`
	Humidity   int     `json:"humidity"` // percentage
	PrecipMM   float64 `json:"precipMm"`
	WindKph    float64 `json:"windKph"`
	WindMph    float64 `json:"windMph"`
	WindDir    string  `json:"windDir"` // 16-point compass, e.g. "NNE"
	DewPointC  float64 `json:"dewPointC"`
	DewPointF  float64 `json:"dewPointF"`
}

// EPAIndex is the US EPA air quality category (1-6)
type EPAIndex int

var epaLabels = map[EPAIndex]string{
	1: "Good",
	2: "Moderate",
	3: "Unhealthy for sensitive group",
	4: "Unhealthy",
	5: "Very Unhealthy",
	6: "Hazardous",
}

// Label returns the category name, or "Unknown" for values outside 1-6
func (i EPAIndex) Label() string {
	if label, ok := epaLabels[i]; ok {
		return label
	}
	return "Unknown"
}

// AirQuality holds pollutant readings. Available is false when the provider
// sent no usable air quality block, which is distinct from zero readings.
type AirQuality struct {
	Available bool     `json:"available"`
	Index     EPAIndex `json:"usEpaIndex"`
	PM25      float64  `json:"pm2_5"` // µg/m³
	PM10      float64  `json:"pm10"`  // µg/m³
}

// NewAirQuality creates an available air quality reading
func NewAirQuality(index EPAIndex, pm25, pm10 float64) AirQuality {
	return AirQuality{Available: true, Index: index, PM25: pm25, PM10: pm10}
}

// UnavailableAirQuality is the placeholder used when no reading exists
func UnavailableAirQuality() AirQuality {
	return AirQuality{}
}

// Report is everything rendered for one invocation
type Report struct {
	Location   Location          `json:"location"`
	Current    CurrentConditions `json:"current"`
	AirQuality AirQuality        `json:"airQuality"`
	Forecast   []ForecastDay     `json:"forecast"`
}

// Validate checks that every quantity other than temperatures and dew points is non-negative
func (r Report) Validate() error {
	type check struct {
		field string
		value float64
	}
	checks := []check{
		{"current.uv", r.Current.UV},
		{"current.humidity", float64(r.Current.Humidity)},
		{"current.precip_mm", r.Current.PrecipMM},
		{"current.wind_kph", r.Current.WindKph},
		{"current.wind_mph", r.Current.WindMph},
	}
	if r.AirQuality.Available {
		checks = append(checks,
			check{"air_quality.pm2_5", r.AirQuality.PM25},
			check{"air_quality.pm10", r.AirQuality.PM10},
		)
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%s is negative: %v", c.field, c.value)
		}
	}
	for i, day := range r.Forecast {
		if err := day.Validate(); err != nil {
			return fmt.Errorf("forecast day %d: %w", i, err)
		}
	}
	return nil
}
