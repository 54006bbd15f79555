package main

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber accepts text which parses as a finite float, surrounding spaces are ignored
func ParseNumber(value string) (float64, bool) {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(number, 0) || math.IsNaN(number) {
		return 0, false
	}

	return number, true
}

func IsNumeric(value string) bool {
	_, ok := ParseNumber(value)
	return ok
}

// FormatNumber renders shortest representation: 6, 0.5, -2.25, 1e+21, 1e-7
func FormatNumber(number float64) string {
	if number == 0 {
		// -0 as well
		return "0"
	}

	abs := math.Abs(number)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(number, 'e', -1, 64), "e")
		return mantissa + "e" + exponent[:1] + strings.TrimLeft(exponent[1:], "0")
	}

	return strconv.FormatFloat(number, 'f', -1, 64)
}
