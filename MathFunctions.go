package main

import (
	"sheetEngine/contracts"
	"strconv"
	"strings"
)

// AggregateFunction receives numeric subset and non-empty subset of all argument values
type AggregateFunction func(numbers []float64, nonEmpty []string) string

var calculateSum = func(numbers []float64, _ []string) string {
	return FormatNumber(sum(numbers))
}

var calculateCount = func(numbers []float64, _ []string) string {
	return strconv.Itoa(len(numbers))
}

var calculateCountA = func(_ []float64, nonEmpty []string) string {
	return strconv.Itoa(len(nonEmpty))
}

var calculateAverage = func(numbers []float64, _ []string) string {
	if len(numbers) == 0 {
		return contracts.DivisionByZeroSentinel
	}
	return FormatNumber(sum(numbers) / float64(len(numbers)))
}

var calculateMin = func(numbers []float64, _ []string) string {
	if len(numbers) == 0 {
		return contracts.NumberSentinel
	}

	minValue := numbers[0]
	for _, number := range numbers[1:] {
		minValue = min(minValue, number)
	}
	return FormatNumber(minValue)
}

var calculateMax = func(numbers []float64, _ []string) string {
	if len(numbers) == 0 {
		return contracts.NumberSentinel
	}

	maxValue := numbers[0]
	for _, number := range numbers[1:] {
		maxValue = max(maxValue, number)
	}
	return FormatNumber(maxValue)
}

var aggregateFunctions = map[string]AggregateFunction{
	"SUM":     calculateSum,
	"COUNT":   calculateCount,
	"COUNTA":  calculateCountA,
	"AVERAGE": calculateAverage,
	"MIN":     calculateMin,
	"MAX":     calculateMax,
}

func LookupAggregateFunction(name string) (AggregateFunction, bool) {
	function, ok := aggregateFunctions[strings.ToUpper(name)]
	return function, ok
}

func sum(numbers []float64) float64 {
	total := 0.0
	for _, number := range numbers {
		total += number
	}
	return total
}
