package main

import (
	"strings"
)

const RangeDelimiter = ":"

// MaxRangeCells larger spans are not expanded and stay opaque tokens
const MaxRangeCells = 1 << 16

func IsRange(token string) bool {
	return strings.Contains(token, RangeDelimiter)
}

// ExpandRange
/**
 * "A1:B2" => ["A1", "B1", "A2", "B2"]
 * "B2:A1" => ["A1", "B1", "A2", "B2"]
 * Malformed token is returned unchanged: "A1:B" => ["A1:B"]
 */
func ExpandRange(token string) []string {
	corners := strings.Split(token, RangeDelimiter)
	if len(corners) != 2 {
		return []string{token}
	}

	startCol, startRow, err := FromKey(strings.ToUpper(strings.TrimSpace(corners[0])))
	if err != nil {
		return []string{token}
	}

	endCol, endRow, err := FromKey(strings.ToUpper(strings.TrimSpace(corners[1])))
	if err != nil {
		return []string{token}
	}

	minCol, maxCol := min(startCol, endCol), max(startCol, endCol)
	minRow, maxRow := min(startRow, endRow), max(startRow, endRow)

	width := maxCol - minCol + 1
	height := maxRow - minRow + 1
	if width > MaxRangeCells || height > MaxRangeCells || width*height > MaxRangeCells {
		return []string{token}
	}

	keys := make([]string, 0, width*height)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			keys = append(keys, ToKey(col, row))
		}
	}

	return keys
}
