package main

import (
	"fmt"
	"sheetEngine/contracts"
	"strconv"
	"strings"
)

const columnBase = 26

// maxColumnIndex keeps column arithmetic far away from int overflow
const maxColumnIndex = 1 << 30

// ToKey builds canonical key from zero-based column and row: (0, 0) => A1, (26, 11) => AA12
func ToKey(col int, row int) string {
	return columnLetters(col) + strconv.Itoa(row+1)
}

// FromKey is inverse of ToKey, returns zero-based column and row
func FromKey(key string) (col int, row int, err error) {
	letters, digits := splitCellKey(key)
	if letters == "" || digits == "" || digits[0] == '0' {
		return 0, 0, fmt.Errorf("`%s`: %w", key, contracts.InvalidCellKeyError)
	}

	for _, ch := range letters {
		col = col*columnBase + int(ch-'A'+1)
		if col > maxColumnIndex {
			return 0, 0, fmt.Errorf("`%s` column is out of range: %w", key, contracts.InvalidCellKeyError)
		}
	}

	row, err = strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("`%s` row is out of range: %w", key, contracts.InvalidCellKeyError)
	}

	return col - 1, row - 1, nil
}

// CanonicalizeCellKey accepts user input like ` b12 ` and returns `B12`
func CanonicalizeCellKey(cellId string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(cellId))
	if _, _, err := FromKey(key); err != nil {
		return "", err
	}

	return key, nil
}

func columnLetters(col int) string {
	letters := make([]byte, 0, 3)
	for col >= 0 {
		letters = append(letters, byte('A'+col%columnBase))
		col = col/columnBase - 1
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters)
}

// splitCellKey returns empty parts when key is not `[A-Z]+[0-9]+`
func splitCellKey(key string) (letters string, digits string) {
	i := 0
	for i < len(key) && key[i] >= 'A' && key[i] <= 'Z' {
		i++
	}

	j := i
	for j < len(key) && key[j] >= '0' && key[j] <= '9' {
		j++
	}

	if i == 0 || j == i || j != len(key) {
		return "", ""
	}

	return key[:i], key[i:]
}
