package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

func RoundWithOneDecimalPlace(f float64) float64 {
	return Round(f, 1)
}

// Round arredonda f para a quantidade de casas decimais informada
func Round(f float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}

// Clamp limita f ao intervalo [min, max]
func Clamp(f, min, max float64) float64 {
	return math.Max(min, math.Min(max, f))
}
