package main

import (
	"github.com/stretchr/testify/assert"
	"math/rand"
	"sheetEngine/contracts"
	"strconv"
	"testing"
)

func TestSheetEngine_ApplyEdit(t *testing.T) {
	t.Run("sum of range", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, err := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{
			"A1": "1",
			"A2": "2",
			"A3": "3",
			"B1": "=SUM(A1:A3)",
		})

		assert.NoError(t, err)
		assert.Equal(t, "6", sheet.Computed["B1"])
		_assertGraphSymmetric(t, sheet.Dependencies)
	})

	t.Run("two cells cycle", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet := engine.NewSheet("sheet1", "Sheet1")

		_, err := engine.ApplyEdit(sheet, "A1", "=B1")
		assert.NoError(t, err)
		_, err = engine.ApplyEdit(sheet, "B1", "=A1")
		assert.NoError(t, err)

		assert.Equal(t, contracts.CircularReferenceSentinel, sheet.Computed["A1"])
		assert.Equal(t, contracts.CircularReferenceSentinel, sheet.Computed["B1"])
		_assertGraphSymmetric(t, sheet.Dependencies)
	})

	t.Run("breaking a cycle", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "=B1", "B1": "=A1"})

		_, err := engine.ApplyEdit(sheet, "B1", "4")
		assert.NoError(t, err)

		assert.Equal(t, "4", sheet.Computed["A1"])
		assert.Equal(t, "4", sheet.Computed["B1"])
	})

	t.Run("aggregate sentinels", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, err := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{
			"C1": "text",
			"D1": "=AVERAGE(B1:B3)",
			"D2": "=MIN(C1)",
			"D3": "=FOO(B1)",
		})

		assert.NoError(t, err)
		assert.Equal(t, contracts.DivisionByZeroSentinel, sheet.Computed["D1"])
		assert.Equal(t, contracts.NumberSentinel, sheet.Computed["D2"])
		assert.Equal(t, contracts.UnknownFunctionSentinel, sheet.Computed["D3"])
	})

	t.Run("edit of a referenced cell keeps dependencies", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "=B1*2", "B1": "5"})
		assert.Equal(t, "10", sheet.Computed["A1"])

		_, err := engine.ApplyEdit(sheet, "B1", "10")
		assert.NoError(t, err)

		assert.Equal(t, "20", sheet.Computed["A1"])
		assert.Equal(t, []string{"B1"}, sheet.Dependencies.ForwardDeps("A1"))
		assert.Equal(t, []string{"A1"}, sheet.Dependencies.ReverseDeps("B1"))
	})

	t.Run("formula change replaces dependencies", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "=B1+C1"})

		_, err := engine.ApplyEdit(sheet, "A1", "=D1")
		assert.NoError(t, err)

		assert.Equal(t, []string{"D1"}, sheet.Dependencies.ForwardDeps("A1"))
		assert.Empty(t, sheet.Dependencies.ReverseDeps("B1"))
		assert.Empty(t, sheet.Dependencies.ReverseDeps("C1"))
		_assertGraphSymmetric(t, sheet.Dependencies)
	})

	t.Run("empty text clears a cell", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "=B1+1", "B1": "5"})

		_, err := engine.ApplyEdit(sheet, "B1", "")
		assert.NoError(t, err)

		assert.NotContains(t, sheet.Cells, "B1")
		assert.Equal(t, "", sheet.Computed["B1"])
		assert.Equal(t, "1", sheet.Computed["A1"])

		_, err = engine.ApplyEdit(sheet, "A1", "")
		assert.NoError(t, err)
		assert.Empty(t, sheet.Cells)
		assert.Empty(t, sheet.Computed)
		assert.Empty(t, sheet.Dependencies.ForwardMap())
	})

	t.Run("keys are canonicalized", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, err := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{" a1 ": "2", "b1": "=A1*3"})

		assert.NoError(t, err)
		assert.Equal(t, map[string]string{"A1": "2", "B1": "=A1*3"}, sheet.Cells)
		assert.Equal(t, "6", sheet.Computed["B1"])
	})

	t.Run("invalid key changes nothing", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "1"})

		_, err := engine.ApplyEdits(sheet, map[string]string{"A1": "2", "cell1x": "3"})

		assert.ErrorIs(t, err, contracts.InvalidCellKeyError)
		assert.Equal(t, map[string]string{"A1": "1"}, sheet.Cells)
		assert.Equal(t, "1", sheet.Computed["A1"])
	})
}

func TestSheetEngine_Recompute(t *testing.T) {
	t.Run("recompute is idempotent", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{
			"A1": "1",
			"A2": "=A1*2",
			"A3": "=SUM(A1:A2)",
			"B1": "=B2",
			"B2": "=B1",
			"C1": "=1/0",
		})

		first := sheet.Computed
		engine.Recompute(sheet)

		assert.Equal(t, first, sheet.Computed)
		assert.Equal(t, "3", sheet.Computed["A3"])
	})

	t.Run("computed covers referenced empty cells", func(t *testing.T) {
		engine := _newTestEngine(false)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "=SUM(B1:B2)"})

		assert.Equal(t, map[string]string{"A1": "0", "B1": "", "B2": ""}, sheet.Computed)
	})
}

func TestSheetEngine_FromSnapshot(t *testing.T) {
	engine := _newTestEngine(false)
	sheet, err := engine.FromSnapshot(contracts.SheetSnapshot{
		Id:           "sheet1",
		Name:         "Budget",
		Cells:        map[string]string{"A1": "2", "A2": "=A1*A1"},
		ColumnWidths: map[string]float64{"0": 150},
		RowHeights:   map[string]float64{"1": 40},
		ForwardDeps:  map[string][]string{"A2": {"Z1"}},
		ReverseDeps:  map[string][]string{"Z1": {"A2"}},
		Computed:     map[string]string{"A2": "999"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "sheet1", sheet.Id)
	assert.Equal(t, "Budget", sheet.Name)
	assert.Equal(t, "4", sheet.Computed["A2"])
	assert.Equal(t, []string{"A1"}, sheet.Dependencies.ForwardDeps("A2"))
	assert.Empty(t, sheet.Dependencies.ReverseDeps("Z1"))
	assert.Equal(t, 150.0, sheet.ColumnWidths["0"])
	assert.Equal(t, 40.0, sheet.RowHeights["1"])

	snapshot := sheet.Snapshot()
	assert.Equal(t, map[string][]string{"A2": {"A1"}}, snapshot.ForwardDeps)
	assert.Equal(t, map[string][]string{"A1": {"A2"}}, snapshot.ReverseDeps)
	assert.Equal(t, sheet.Computed, snapshot.Computed)

	t.Run("invalid cell key", func(t *testing.T) {
		_, err := engine.FromSnapshot(contracts.SheetSnapshot{Id: "sheet2", Cells: map[string]string{"1A": "1"}})
		assert.ErrorIs(t, err, contracts.InvalidCellKeyError)
	})
}

func TestSheetEngine_Hydrate(t *testing.T) {
	engine := _newTestEngine(false)
	sheet := &contracts.Sheet{
		Id:    "sheet1",
		Cells: map[string]string{"A1": "5", "B1": "=A1+1"},
	}

	engine.Hydrate(sheet)

	assert.NotNil(t, sheet.Dependencies)
	assert.NotNil(t, sheet.ColumnWidths)
	assert.NotNil(t, sheet.RowHeights)
	assert.Equal(t, "6", sheet.Computed["B1"])
	assert.Equal(t, []string{"B1"}, sheet.Dependencies.ReverseDeps("A1"))
}

func TestSheetEngine_IncrementalRecompute(t *testing.T) {
	t.Run("only affected cells are evaluated", func(t *testing.T) {
		engine := _newTestEngine(true)
		sheet, _ := engine.ApplyEdits(engine.NewSheet("sheet1", "Sheet1"), map[string]string{"A1": "1", "B1": "=A1+1", "C1": "7"})

		// stale value survives because C1 is not affected by the edit
		sheet.Computed["C1"] = "stale"
		_, err := engine.ApplyEdit(sheet, "A1", "10")

		assert.NoError(t, err)
		assert.Equal(t, "11", sheet.Computed["B1"])
		assert.Equal(t, "stale", sheet.Computed["C1"])
	})

	t.Run("same results as full recompute", func(t *testing.T) {
		keys := []string{"A1", "A2", "A3", "B1", "B2", "B3", "C1", "C2"}
		values := []string{
			"", "", "1", "-2.5", "text", "7",
			"=A1+B1", "=A2*2", "=B3-A3", "=C1/C2", "=A1",
			"=SUM(A1:B3)", "=AVERAGE(A1:A3)", "=MIN(B1:C2)", "=COUNTA(A1:C2)",
			"=C2+1", "=B2", "=FOO(A1)", "=A3%2",
		}

		random := rand.New(rand.NewSource(42))
		fullEngine := _newTestEngine(false)
		incrementalEngine := _newTestEngine(true)
		fullSheet := fullEngine.NewSheet("full", "full")
		incrementalSheet := incrementalEngine.NewSheet("incremental", "incremental")

		for step := 0; step < 500; step++ {
			edits := map[string]string{}
			for i := random.Intn(3); i >= 0; i-- {
				edits[keys[random.Intn(len(keys))]] = values[random.Intn(len(values))]
			}

			_, err := fullEngine.ApplyEdits(fullSheet, edits)
			assert.NoError(t, err)
			_, err = incrementalEngine.ApplyEdits(incrementalSheet, edits)
			assert.NoError(t, err)

			if !assert.Equal(t, fullSheet.Computed, incrementalSheet.Computed, "step "+strconv.Itoa(step)) {
				return
			}
			_assertGraphSymmetric(t, incrementalSheet.Dependencies)
		}
	})
}
