package utils

import (
	"math"
)

// MetersPerSecondToMPH is the provider's m/s to mph factor
const MetersPerSecondToMPH = 2.237

// ToMPH converts a wind speed from m/s to mph
func ToMPH(metersPerSecond float64) float64 {
	return metersPerSecond * MetersPerSecondToMPH
}

// Clamp limits a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
