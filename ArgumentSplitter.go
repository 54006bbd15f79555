package main

import "strings"

// SplitTopLevelArguments splits `A1, SUM(B1, B2), 3` into ["A1", "SUM(B1, B2)", "3"].
// Unbalanced parentheses are tolerated, depth may go negative.
func SplitTopLevelArguments(arguments string) []string {
	result := make([]string, 0, 4)
	depth := 0
	last := 0

	for i := 0; i < len(arguments); i++ {
		switch arguments[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				result = appendArgument(result, arguments[last:i])
				last = i + 1
			}
		}
	}

	return appendArgument(result, arguments[last:])
}

func appendArgument(arguments []string, argument string) []string {
	argument = strings.TrimSpace(argument)
	if argument == "" {
		return arguments
	}

	return append(arguments, argument)
}
