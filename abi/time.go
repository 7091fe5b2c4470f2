package abi

import (
	"github.com/austoonz/Convert/convert"
)

// ToUnixTime returns the Unix timestamp of a UTC calendar time, in milliseconds when milliseconds is set
func ToUnixTime(year int32, month, day, hour, minute, second uint32, milliseconds bool) int64 {
	return convert.ToUnixTime(convert.DateTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}, milliseconds)
}

// FromUnixTime writes the UTC calendar fields of timestamp through the out pointers. It returns false,
// writing nothing, if any pointer is nil.
func FromUnixTime(timestamp int64, milliseconds bool, year *int32, month, day, hour, minute, second *uint32) bool {
	if year == nil || month == nil || day == nil || hour == nil || minute == nil || second == nil {
		return false
	}

	d := convert.FromUnixTime(timestamp, milliseconds)
	*year = d.Year
	*month = d.Month
	*day = d.Day
	*hour = d.Hour
	*minute = d.Minute
	*second = d.Second
	return true
}

// FahrenheitToCelsius converts a Fahrenheit temperature to Celsius
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return convert.FahrenheitToCelsius(fahrenheit)
}

// CelsiusToFahrenheit converts a Celsius temperature to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return convert.CelsiusToFahrenheit(celsius)
}
