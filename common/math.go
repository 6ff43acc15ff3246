package common

import "math"

// PixelsInUnit is the number of world pixels that make up one gameplay unit.
const PixelsInUnit = 200.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Fraction returns where value sits between begin and end (0 at begin, 1 at end).
func Fraction(value, begin, end float64) float64 {
	return (value - begin) / (end - begin)
}

// Fractal is the inverse of Fraction.
func Fractal(fraction, begin, end float64) float64 {
	return fraction*(end-begin) + begin
}

func ToUnits(pixels float64) float64 {
	return pixels / PixelsInUnit
}

func ToPixels(units float64) float64 {
	return units * PixelsInUnit
}
