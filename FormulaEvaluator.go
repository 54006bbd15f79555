package main

import (
	"sheetEngine/contracts"
	"strconv"
	"strings"
)

// CellValueLookup returns already computed value of a referenced cell
type CellValueLookup func(cellKey string) string

type FormulaEvaluator struct {
	arithmetic *ArithmeticEvaluator
}

func NewFormulaEvaluator(arithmetic *ArithmeticEvaluator) *FormulaEvaluator {
	return &FormulaEvaluator{arithmetic: arithmetic}
}

// EvaluateCell computes display value of raw cell text. Every key from ExtractReferences(raw)
// must be resolvable by lookup. Never fails: errors become sentinels.
func (e *FormulaEvaluator) EvaluateCell(raw string, lookup CellValueLookup) string {
	// not formula
	if !IsFormula(raw) {
		return raw
	}

	body := formulaBody(raw)
	if call, ok := ParseFunctionCall(body); ok {
		return e.evaluateFunction(call, lookup)
	}

	return e.evaluateExpression(body, lookup)
}

func (e *FormulaEvaluator) evaluateFunction(call FunctionCall, lookup CellValueLookup) string {
	numbers := make([]float64, 0, len(call.Arguments))
	nonEmpty := make([]string, 0, len(call.Arguments))

	for _, argument := range call.Arguments {
		for _, value := range e.argumentValues(argument, lookup) {
			if value != "" {
				nonEmpty = append(nonEmpty, value)
			}
			if number, ok := ParseNumber(value); ok {
				numbers = append(numbers, number)
			}
		}
	}

	function, ok := LookupAggregateFunction(call.Name)
	if !ok {
		return contracts.UnknownFunctionSentinel
	}

	return function(numbers, nonEmpty)
}

func (e *FormulaEvaluator) argumentValues(argument string, lookup CellValueLookup) []string {
	switch classifyArgument(argument) {
	case RangeArgument:
		keys := ExpandRange(argument)
		values := make([]string, 0, len(keys))
		for _, key := range keys {
			values = append(values, lookup(key))
		}
		return values

	case ReferenceArgument:
		return []string{lookup(strings.ToUpper(argument))}

	default:
		return []string{e.evaluateExpression(argument, lookup)}
	}
}

// evaluateExpression substitutes references by numbers (non-numeric values become 0), then does the math
func (e *FormulaEvaluator) evaluateExpression(expression string, lookup CellValueLookup) string {
	substituted := cellReferenceRegex.ReplaceAllStringFunc(expression, func(cellKey string) string {
		return numericOperand(lookup(cellKey))
	})

	result, err := e.arithmetic.Evaluate(substituted)
	if err != nil {
		return contracts.ExpressionErrorSentinel
	}

	return FormatNumber(result)
}

// numericOperand renders a number as an expression literal, large magnitudes use exponent form
// so the parser never sees an integer literal beyond int64
func numericOperand(value string) string {
	number, ok := ParseNumber(value)
	if !ok {
		return "0"
	}

	operand := strconv.FormatFloat(number, 'g', -1, 64)
	if number < 0 {
		return "(" + operand + ")"
	}

	return operand
}
