package main

import (
	"github.com/stretchr/testify/assert"
	"sheetEngine/contracts"
	"strconv"
	"testing"
)

func TestRecomputePass_Evaluate(t *testing.T) {
	evaluator := NewFormulaEvaluator(NewArithmeticEvaluator())

	t.Run("dependencies are evaluated first", func(t *testing.T) {
		cells := map[string]string{
			"A1": "=B1+C1",
			"B1": "=C1*2",
			"C1": "3",
		}

		pass := NewRecomputePass(cells, evaluator)
		assert.Equal(t, "9", pass.Evaluate("A1"))
		assert.Equal(t, map[string]string{"A1": "9", "B1": "6", "C1": "3"}, pass.Results())
	})

	t.Run("two cells cycle is the same from any start", func(t *testing.T) {
		cells := map[string]string{"A1": "=B1", "B1": "=A1"}

		for _, start := range []string{"A1", "B1"} {
			pass := NewRecomputePass(cells, evaluator)
			pass.Evaluate(start)

			assert.Equal(t, contracts.CircularReferenceSentinel, pass.Results()["A1"], start)
			assert.Equal(t, contracts.CircularReferenceSentinel, pass.Results()["B1"], start)
		}
	})

	t.Run("self reference", func(t *testing.T) {
		pass := NewRecomputePass(map[string]string{"A1": "=A1+1"}, evaluator)
		assert.Equal(t, contracts.CircularReferenceSentinel, pass.Evaluate("A1"))
	})

	t.Run("cell reading a cycle is not in the cycle", func(t *testing.T) {
		cells := map[string]string{
			"A1": "=B1",
			"B1": "=C1",
			"C1": "=A1",
			"D1": "=A1+1",
			"E1": "=COUNTA(A1:C1)",
		}

		pass := NewRecomputePass(cells, evaluator)
		assert.Equal(t, "1", pass.Evaluate("D1"))
		assert.Equal(t, "3", pass.Evaluate("E1"))
		for _, cellKey := range []string{"A1", "B1", "C1"} {
			assert.Equal(t, contracts.CircularReferenceSentinel, pass.Results()[cellKey])
		}
	})

	t.Run("referenced empty cell is computed as empty", func(t *testing.T) {
		pass := NewRecomputePass(map[string]string{"A1": "=Z9"}, evaluator)

		assert.Equal(t, "0", pass.Evaluate("A1"))
		assert.Contains(t, pass.Results(), "Z9")
		assert.Equal(t, "", pass.Results()["Z9"])
	})

	t.Run("seeded value is used as is", func(t *testing.T) {
		pass := NewRecomputePass(map[string]string{"A1": "=B1*2", "B1": "1"}, evaluator)
		pass.Seed("B1", "7")

		assert.Equal(t, "14", pass.Evaluate("A1"))
	})

	t.Run("long chain does not need recursion", func(t *testing.T) {
		const chainLength = 20000
		cells := map[string]string{}
		for row := 1; row < chainLength; row++ {
			cells["A"+strconv.Itoa(row)] = "=A" + strconv.Itoa(row+1) + "+1"
		}
		cells["A"+strconv.Itoa(chainLength)] = "1"

		pass := NewRecomputePass(cells, evaluator)
		assert.Equal(t, strconv.Itoa(chainLength), pass.Evaluate("A1"))
	})

	t.Run("long cycle", func(t *testing.T) {
		const cycleLength = 5000
		cells := map[string]string{}
		for row := 1; row < cycleLength; row++ {
			cells["A"+strconv.Itoa(row)] = "=A" + strconv.Itoa(row+1)
		}
		cells["A"+strconv.Itoa(cycleLength)] = "=A1"

		pass := NewRecomputePass(cells, evaluator)
		pass.Evaluate("A2500")
		assert.Len(t, pass.Results(), cycleLength)
		for _, value := range pass.Results() {
			assert.Equal(t, contracts.CircularReferenceSentinel, value)
		}
	})
}
