package weatherapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"weather-report/datasource"
	"weather-report/models"
	"weather-report/units"
)

// forecastResponse mirrors forecast.json. Blocks are kept raw and read field
// by field, so a bad value outside location.name and current.temp_c only
// loses that value instead of the whole report.
type forecastResponse struct {
	Location json.RawMessage `json:"location"`
	Current  json.RawMessage `json:"current"`
	Forecast json.RawMessage `json:"forecast"`
}

// errorResponse is the body WeatherAPI sends with 4xx answers
type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fields is one JSON object with its values left undecoded
type fields map[string]json.RawMessage

// decodeFields returns nil if raw is absent or not an object
func decodeFields(raw json.RawMessage) fields {
	if isAbsent(raw) {
		return nil
	}
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}

// number reads a numeric value, also accepting numbers sent as strings.
// Missing, mistyped and non-finite values give nil.
func (f fields) number(key string) *float64 {
	raw, ok := f[key]
	if !ok || isAbsent(raw) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return nil
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// text reads a string value, "" when missing or mistyped
func (f fields) text(key string) string {
	var s string
	if raw, ok := f[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// conditionText reads {"condition":{"text":...}}
func (f fields) conditionText() string {
	return decodeFields(f["condition"]).text("text")
}

// parseReport maps a forecast.json body to a Report
func parseReport(body []byte) (models.Report, error) {
	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Report{}, fmt.Errorf("%w: %v", datasource.ErrMalformedResponse, err)
	}

	loc := decodeFields(resp.Location)
	name := strings.TrimSpace(loc.text("name"))
	if name == "" {
		return models.Report{}, fmt.Errorf("%w: missing location.name", datasource.ErrMalformedResponse)
	}

	cur := decodeFields(resp.Current)
	if cur == nil {
		return models.Report{}, fmt.Errorf("%w: missing current", datasource.ErrMalformedResponse)
	}
	tempRaw, ok := cur["temp_c"]
	if !ok || isAbsent(tempRaw) {
		return models.Report{}, fmt.Errorf("%w: missing current.temp_c", datasource.ErrMalformedResponse)
	}
	var tempC float64
	if err := json.Unmarshal(tempRaw, &tempC); err != nil {
		return models.Report{}, fmt.Errorf("%w: current.temp_c: %v", datasource.ErrMalformedResponse, err)
	}

	report := models.Report{
		Location: models.Location{
			Name:      name,
			Region:    loc.text("region"),
			Country:   loc.text("country"),
			LocalTime: loc.text("localtime"),
		},
		Current:    currentConditions(cur, tempC),
		AirQuality: airQuality(cur["air_quality"]),
		Forecast:   forecastDays(resp.Forecast),
	}

	if err := report.Validate(); err != nil {
		return models.Report{}, fmt.Errorf("%w: %v", datasource.ErrMalformedResponse, err)
	}
	return report, nil
}

func currentConditions(cur fields, tempC float64) models.CurrentConditions {
	feelsC := valueOr(cur.number("feelslike_c"), tempC)
	windKph := valueOr(cur.number("wind_kph"), 0)
	dewC := valueOr(cur.number("dewpoint_c"), 0)
	return models.CurrentConditions{
		Condition:  cur.conditionText(),
		TempC:      tempC,
		TempF:      valueOr(cur.number("temp_f"), units.CelsiusToFahrenheit(tempC)),
		FeelsLikeC: feelsC,
		FeelsLikeF: valueOr(cur.number("feelslike_f"), units.CelsiusToFahrenheit(feelsC)),
		UV:         valueOr(cur.number("uv"), 0),
		Humidity:   int(math.Round(valueOr(cur.number("humidity"), 0))),
		PrecipMM:   units.Millimetres(valueOr(cur.number("precip_mm"), 0)),
		WindKph:    windKph,
		WindMph:    valueOr(cur.number("wind_mph"), units.KphToMph(windKph)),
		WindDir:    cur.text("wind_dir"),
		DewPointC:  dewC,
		DewPointF:  valueOr(cur.number("dewpoint_f"), units.CelsiusToFahrenheit(dewC)),
	}
}

// airQuality degrades to the unavailable placeholder on a missing, mistyped
// or negative reading
func airQuality(raw json.RawMessage) models.AirQuality {
	aq := decodeFields(raw)
	pm25, pm10, index := aq.number("pm2_5"), aq.number("pm10"), aq.number("us-epa-index")
	if pm25 == nil && pm10 == nil && index == nil {
		return models.UnavailableAirQuality()
	}
	if valueOr(pm25, 0) < 0 || valueOr(pm10, 0) < 0 {
		return models.UnavailableAirQuality()
	}
	return models.NewAirQuality(
		models.EPAIndex(math.Round(valueOr(index, 0))),
		valueOr(pm25, 0),
		valueOr(pm10, 0),
	)
}

// forecastDays keeps the days that decode and pass validation, in provider order
func forecastDays(raw json.RawMessage) []models.ForecastDay {
	var fb struct {
		ForecastDay []json.RawMessage `json:"forecastday"`
	}
	if isAbsent(raw) || json.Unmarshal(raw, &fb) != nil {
		return nil
	}

	days := make([]models.ForecastDay, 0, len(fb.ForecastDay))
	for _, rawDay := range fb.ForecastDay {
		fd := decodeFields(rawDay)
		day := decodeFields(fd["day"])
		date := fd.text("date")
		if date == "" || day == nil {
			continue
		}

		maxC := valueOr(day.number("maxtemp_c"), 0)
		minC := valueOr(day.number("mintemp_c"), 0)
		d := models.ForecastDay{
			Date:      date,
			MaxTempC:  maxC,
			MaxTempF:  valueOr(day.number("maxtemp_f"), units.CelsiusToFahrenheit(maxC)),
			MinTempC:  minC,
			MinTempF:  valueOr(day.number("mintemp_f"), units.CelsiusToFahrenheit(minC)),
			Condition: day.conditionText(),
			PrecipMM:  units.Millimetres(valueOr(day.number("totalprecip_mm"), 0)),
			UV:        valueOr(day.number("uv"), 0),
		}
		if d.Validate() != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}

// parseAPIError builds an APIError from a non-200 response
func parseAPIError(statusCode int, status string, body []byte) *datasource.APIError {
	apiErr := &datasource.APIError{StatusCode: statusCode}

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != nil && er.Error.Message != "" {
		apiErr.Code = er.Error.Code
		apiErr.Message = er.Error.Message
		return apiErr
	}

	// status is "401 Unauthorized"; keep only the text part
	text := strings.TrimSpace(strings.TrimPrefix(status, fmt.Sprint(statusCode)))
	if text == "" {
		text = "unexpected response"
	}
	apiErr.Message = fmt.Sprintf("%s (HTTP %d)", text, statusCode)
	return apiErr
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
