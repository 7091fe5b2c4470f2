package convert

// FahrenheitToCelsius converts a Fahrenheit temperature to Celsius
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// CelsiusToFahrenheit converts a Celsius temperature to Fahrenheit
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}
