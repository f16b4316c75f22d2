// Package render formats a weather report as fixed-layout console text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"weather-report/models"
	"weather-report/units"
)

const (
	unavailable  = "unavailable"
	unknownArrow = "❓"
)

var border = "<>" + strings.Repeat("-", 70) + "<>"

// windArrows maps the 16-point compass direction the wind blows from to an arrow
var windArrows = map[string]string{
	"N":   "⬆",
	"NNE": "↗",
	"NE":  "↗",
	"ENE": "➡",
	"E":   "➡",
	"ESE": "↘",
	"SE":  "↘",
	"SSE": "⬇",
	"S":   "⬇",
	"SSW": "↙",
	"SW":  "↙",
	"WSW": "⬅",
	"W":   "⬅",
	"WNW": "↖",
	"NW":  "↖",
	"NNW": "⬆",
}

// WindArrow returns the glyph for a compass direction, or ❓ if it is not one
func WindArrow(dir string) string {
	if arrow, ok := windArrows[strings.ToUpper(strings.TrimSpace(dir))]; ok {
		return arrow
	}
	return unknownArrow
}

// num formats a value rounded to one decimal place
func num(v float64) string {
	return strconv.FormatFloat(units.Round1(v), 'f', 1, 64)
}

// Render returns the report text. The same report always yields the same bytes.
func Render(r models.Report) string {
	var b strings.Builder

	loc := r.Location
	cur := r.Current

	fmt.Fprintln(&b, border)
	fmt.Fprintf(&b, "%s (%s, %s)\nLocal Time: %s\n\n", loc.Name, loc.Region, loc.Country, loc.LocalTime)

	fmt.Fprintf(&b, "%s | %s°C / %s°F\tUV: %s\n\n", cur.Condition, num(cur.TempC), num(cur.TempF), num(cur.UV))

	fmt.Fprintf(&b, "Feels like: %s°C / %s°F\tHumidity: %d%%\tPrecip: %s mm\n",
		num(cur.FeelsLikeC), num(cur.FeelsLikeF), cur.Humidity, num(cur.PrecipMM))

	fmt.Fprintf(&b, "Wind: %s %skph / %smph \tDew Point: %s°C / %s°F\n",
		WindArrow(cur.WindDir), num(cur.WindKph), num(cur.WindMph), num(cur.DewPointC), num(cur.DewPointF))

	b.WriteString(airQualityLine(r.AirQuality))

	b.WriteString("\n▶ Forecast:\n")
	if len(r.Forecast) == 0 {
		b.WriteString("  (no forecast data)\n")
	}
	for _, day := range r.Forecast {
		fmt.Fprintf(&b, "  - %s: %s°C / %s°F, %s (Precip: %s mm, UV: %s)\n",
			day.Date, num(day.MaxTempC), num(day.MaxTempF), day.Condition, num(day.PrecipMM), num(day.UV))
	}
	fmt.Fprintln(&b, border)

	return b.String()
}

func airQualityLine(aq models.AirQuality) string {
	if !aq.Available {
		return fmt.Sprintf("AQI: %s\tPM2.5: %s\tPM10: %s\n", unavailable, unavailable, unavailable)
	}
	return fmt.Sprintf("AQI: %s\tPM2.5: %s μg/m³\tPM10: %s μg/m³\n", aq.Index.Label(), num(aq.PM25), num(aq.PM10))
}

// Write renders the report to w
func Write(w io.Writer, r models.Report) error {
	_, err := io.WriteString(w, Render(r))
	return err
}
