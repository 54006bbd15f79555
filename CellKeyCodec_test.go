package main

import (
	"github.com/stretchr/testify/assert"
	"sheetEngine/contracts"
	"testing"
)

func TestToKey(t *testing.T) {
	testCases := map[string][2]int{
		"A1":   {0, 0},
		"B3":   {1, 2},
		"Z10":  {25, 9},
		"AA12": {26, 11},
		"AZ1":  {51, 0},
		"BA1":  {52, 0},
		"ZZ1":  {701, 0},
		"AAA1": {702, 0},
	}

	for expected, position := range testCases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, ToKey(position[0], position[1]))
		})
	}
}

func TestFromKey(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for col := 0; col < 800; col += 7 {
			for row := 0; row < 120; row += 13 {
				actualCol, actualRow, err := FromKey(ToKey(col, row))
				assert.NoError(t, err)
				assert.Equal(t, col, actualCol)
				assert.Equal(t, row, actualRow)
			}
		}
	})

	t.Run("invalid keys", func(t *testing.T) {
		for _, key := range []string{"", "A", "1", "1A", "A0", "A01", "a1", "A1B", "A-1", "A 1", "ÄA1"} {
			_, _, err := FromKey(key)
			assert.ErrorIs(t, err, contracts.InvalidCellKeyError, key)
		}
	})

	t.Run("column overflow", func(t *testing.T) {
		_, _, err := FromKey("ZZZZZZZZZZZZZZZZ1")
		assert.ErrorIs(t, err, contracts.InvalidCellKeyError)
	})
}

func TestCanonicalizeCellKey(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := map[string]string{
			"A1":     "A1",
			" b12 ":  "B12",
			"aa100":  "AA100",
			"\tZz9\n": "ZZ9",
		}

		for input, expected := range testCases {
			actual, err := CanonicalizeCellKey(input)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"", "cell1x", "var1_", "A0", "1"} {
			actual, err := CanonicalizeCellKey(input)
			assert.ErrorIs(t, err, contracts.InvalidCellKeyError, input)
			assert.Empty(t, actual)
		}
	})
}
