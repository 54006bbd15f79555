package main

import (
	"regexp"
	"sheetEngine/contracts"
	"strings"
)

var cellReferenceRegex = regexp.MustCompile(`[A-Z]+[0-9]+`)

var bareCellReferenceRegex = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

var functionCallRegex = regexp.MustCompile(`(?s)^([A-Za-z]+)\((.*)\)$`)

type ArgumentKind int

const (
	RangeArgument ArgumentKind = iota
	ReferenceArgument
	ExpressionArgument
)

type FunctionCall struct {
	Name      string
	Arguments []string
}

func IsFormula(raw string) bool {
	return strings.HasPrefix(raw, contracts.FormulaPrefix)
}

func formulaBody(raw string) string {
	return strings.TrimSpace(strings.TrimPrefix(raw, contracts.FormulaPrefix))
}

func ParseFunctionCall(body string) (call FunctionCall, ok bool) {
	matches := functionCallRegex.FindStringSubmatch(body)
	if matches == nil {
		return call, false
	}

	return FunctionCall{
		Name:      matches[1],
		Arguments: SplitTopLevelArguments(matches[2]),
	}, true
}

func classifyArgument(argument string) ArgumentKind {
	if IsRange(argument) {
		return RangeArgument
	} else if bareCellReferenceRegex.MatchString(argument) {
		return ReferenceArgument
	}

	return ExpressionArgument
}

// ExtractReferences returns keys the raw cell text reads from, in first occurrence order.
// The evaluator reads exactly these keys, so the dependency graph never misses an edge.
func ExtractReferences(raw string) []string {
	references := newOrderedKeySet()
	if !IsFormula(raw) {
		return references.keys
	}

	body := formulaBody(raw)
	if call, ok := ParseFunctionCall(body); ok {
		for _, argument := range call.Arguments {
			references.add(argumentReferences(argument)...)
		}
	} else {
		references.add(cellReferenceRegex.FindAllString(body, -1)...)
	}

	return references.keys
}

func argumentReferences(argument string) []string {
	switch classifyArgument(argument) {
	case RangeArgument:
		return ExpandRange(argument)
	case ReferenceArgument:
		return []string{strings.ToUpper(argument)}
	default:
		return cellReferenceRegex.FindAllString(argument, -1)
	}
}

type orderedKeySet struct {
	keys []string
	seen map[string]bool
}

func newOrderedKeySet() *orderedKeySet {
	return &orderedKeySet{
		keys: make([]string, 0),
		seen: map[string]bool{},
	}
}

func (s *orderedKeySet) add(keys ...string) {
	for _, key := range keys {
		if !s.seen[key] {
			s.seen[key] = true
			s.keys = append(s.keys, key)
		}
	}
}
