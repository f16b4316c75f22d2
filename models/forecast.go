package models

import "fmt"

// ForecastDay is the daily summary for one forecast date
type ForecastDay struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	MaxTempC  float64 `json:"maxTempC"`
	MaxTempF  float64 `json:"maxTempF"`
	MinTempC  float64 `json:"minTempC"`
	MinTempF  float64 `json:"minTempF"`
	Condition string  `json:"condition"`
	PrecipMM  float64 `json:"precipMm"` // total for the day
	UV        float64 `json:"uv"`
}

// Validate checks that the non-negative quantities of a day are non-negative
func (d ForecastDay) Validate() error {
	if d.PrecipMM < 0 {
		return fmt.Errorf("totalprecip_mm is negative: %v", d.PrecipMM)
	}
	if d.UV < 0 {
		return fmt.Errorf("uv is negative: %v", d.UV)
	}
	return nil
}
