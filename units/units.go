package units

import "math"

const kmPerMile = 1.609344

// CelsiusToFahrenheit converts a temperature from Celsius to Fahrenheit
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts a temperature from Fahrenheit to Celsius
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// KphToMph converts a speed from kilometres per hour to miles per hour
func KphToMph(kph float64) float64 {
	return kph / kmPerMile
}

// MphToKph converts a speed from miles per hour to kilometres per hour
func MphToKph(mph float64) float64 {
	return mph * kmPerMile
}

// Millimetres returns a precipitation amount unchanged; the provider already reports mm
func Millimetres(mm float64) float64 {
	return mm
}

// Round1 rounds to one decimal place, halves away from zero
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
