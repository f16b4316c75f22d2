package render

import (
	"bytes"
	"strings"
	"testing"

	"weather-report/models"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func londonReport() models.Report {
	return models.Report{
		Location: models.Location{
			Name:      "London",
			Region:    "City of London, Greater London",
			Country:   "United Kingdom",
			LocalTime: "2025-08-01 14:30",
		},
		Current: models.CurrentConditions{
			Condition:  "Partly cloudy",
			TempC:      21.2,
			TempF:      70.16,
			FeelsLikeC: 21.2,
			FeelsLikeF: 70.16,
			UV:         3.5,
			Humidity:   43,
			PrecipMM:   0,
			WindKph:    11.2,
			WindMph:    6.9,
			WindDir:    "NE",
			DewPointC:  5.8,
			DewPointF:  42.44,
		},
		AirQuality: models.NewAirQuality(1, 9.4, 12.8),
		Forecast: []models.ForecastDay{
			{Date: "2025-08-01", MaxTempC: 22.4, MaxTempF: 72.3, MinTempC: 14.1, MinTempF: 57.4, Condition: "Patchy rain nearby", PrecipMM: 0.3, UV: 4},
			{Date: "2025-08-02", MaxTempC: 24, MaxTempF: 75.2, MinTempC: 13.5, MinTempF: 56.3, Condition: "Sunny", PrecipMM: 0, UV: 5},
			{Date: "2025-08-03", MaxTempC: 19.8, MaxTempF: 67.6, MinTempC: 12.9, MinTempF: 55.2, Condition: "Moderate rain", PrecipMM: 4.7, UV: 2},
		},
	}
}

var londonGolden = strings.Join([]string{
	"<>----------------------------------------------------------------------<>",
	"London (City of London, Greater London, United Kingdom)",
	"Local Time: 2025-08-01 14:30",
	"",
	"Partly cloudy | 21.2°C / 70.2°F\tUV: 3.5",
	"",
	"Feels like: 21.2°C / 70.2°F\tHumidity: 43%\tPrecip: 0.0 mm",
	"Wind: ↗ 11.2kph / 6.9mph \tDew Point: 5.8°C / 42.4°F",
	"AQI: Good\tPM2.5: 9.4 μg/m³\tPM10: 12.8 μg/m³",
	"",
	"▶ Forecast:",
	"  - 2025-08-01: 22.4°C / 72.3°F, Patchy rain nearby (Precip: 0.3 mm, UV: 4.0)",
	"  - 2025-08-02: 24.0°C / 75.2°F, Sunny (Precip: 0.0 mm, UV: 5.0)",
	"  - 2025-08-03: 19.8°C / 67.6°F, Moderate rain (Precip: 4.7 mm, UV: 2.0)",
	"<>----------------------------------------------------------------------<>",
	"",
}, "\n")

func assertText(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("rendered text differs (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}

func TestRenderGolden(t *testing.T) {
	report := londonReport()
	first := Render(report)
	assertText(t, first, londonGolden)

	for i := 0; i < 5; i++ {
		if again := Render(report); again != first {
			t.Fatalf("render %d differs from the first", i)
		}
	}
}

func TestRenderUnavailableAirQuality(t *testing.T) {
	report := londonReport()
	report.AirQuality = models.UnavailableAirQuality()

	want := strings.Replace(londonGolden,
		"AQI: Good\tPM2.5: 9.4 μg/m³\tPM10: 12.8 μg/m³",
		"AQI: unavailable\tPM2.5: unavailable\tPM10: unavailable", 1)
	assertText(t, Render(report), want)
}

func TestRenderUnknownEPAIndex(t *testing.T) {
	report := londonReport()
	report.AirQuality = models.NewAirQuality(9, 1, 2)
	if !strings.Contains(Render(report), "AQI: Unknown\tPM2.5: 1.0 μg/m³\tPM10: 2.0 μg/m³") {
		t.Errorf("unexpected air quality line:\n%s", Render(report))
	}
}

func TestRenderEmptyForecast(t *testing.T) {
	report := londonReport()
	report.Forecast = nil
	out := Render(report)
	if !strings.Contains(out, "▶ Forecast:\n  (no forecast data)\n<>") {
		t.Errorf("unexpected forecast section:\n%s", out)
	}
}

func TestWindArrow(t *testing.T) {
	cases := map[string]string{
		"N": "⬆", "NE": "↗", "E": "➡", "SE": "↘",
		"S": "⬇", "SW": "↙", "W": "⬅", "NW": "↖",
		"NNW": "⬆", "ssw": "↙", "": "❓", "X": "❓",
	}
	for dir, want := range cases {
		if got := WindArrow(dir); got != want {
			t.Errorf("WindArrow(%q) = %q, want %q", dir, got, want)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, londonReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	assertText(t, buf.String(), londonGolden)
}
