package main

import (
	"fmt"
	"sheetEngine/contracts"
	"sort"
)

type SheetEngine struct {
	evaluator   *FormulaEvaluator
	incremental bool
}

// NewSheetEngine with incremental=true evaluates only edited cells and their dependants,
// previous Computed values are reused for everything else.
func NewSheetEngine(evaluator *FormulaEvaluator, incremental bool) *SheetEngine {
	return &SheetEngine{
		evaluator:   evaluator,
		incremental: incremental,
	}
}

func (e *SheetEngine) NewSheet(id string, name string) *contracts.Sheet {
	return &contracts.Sheet{
		Id:           id,
		Name:         name,
		Cells:        map[string]string{},
		ColumnWidths: map[string]float64{},
		RowHeights:   map[string]float64{},
		Computed:     map[string]string{},
		Dependencies: NewCellDependencyGraph(),
	}
}

// FromSnapshot ignores dependency maps and computed values of the snapshot, both are rebuilt from cells
func (e *SheetEngine) FromSnapshot(snapshot contracts.SheetSnapshot) (*contracts.Sheet, error) {
	sheet := e.NewSheet(snapshot.Id, snapshot.Name)
	for col, width := range snapshot.ColumnWidths {
		sheet.ColumnWidths[col] = width
	}
	for row, height := range snapshot.RowHeights {
		sheet.RowHeights[row] = height
	}

	return e.ApplyEdits(sheet, snapshot.Cells)
}

// RebuildDepsFor refreshes graph edges of a single cell from its current raw text
func (e *SheetEngine) RebuildDepsFor(sheet *contracts.Sheet, cellKey string) {
	sheet.Dependencies.SetDependsOn(cellKey, ExtractReferences(sheet.Cells[cellKey]))
}

func (e *SheetEngine) ApplyEdit(sheet *contracts.Sheet, cellKey string, rawText string) (*contracts.Sheet, error) {
	return e.ApplyEdits(sheet, map[string]string{cellKey: rawText})
}

// ApplyEdits stores all values (empty text clears a cell), repairs the graph for every edited key
// and recomputes once. Nothing is changed when any key is invalid.
func (e *SheetEngine) ApplyEdits(sheet *contracts.Sheet, edits map[string]string) (*contracts.Sheet, error) {
	canonicalEdits := make(map[string]string, len(edits))
	for _, cellId := range sortedKeys(edits) {
		cellKey, err := CanonicalizeCellKey(cellId)
		if err != nil {
			return sheet, fmt.Errorf("cell %s: %w", cellId, err)
		}
		canonicalEdits[cellKey] = edits[cellId]
	}

	e.ensureSheet(sheet)

	editedKeys := sortedKeys(canonicalEdits)
	for _, cellKey := range editedKeys {
		if rawText := canonicalEdits[cellKey]; rawText == "" {
			delete(sheet.Cells, cellKey)
		} else {
			sheet.Cells[cellKey] = rawText
		}
		e.RebuildDepsFor(sheet, cellKey)
	}

	if e.incremental {
		return e.recomputeAffected(sheet, editedKeys), nil
	}

	return e.Recompute(sheet), nil
}

// Recompute replaces Computed with a fresh full pass, graph is not touched
func (e *SheetEngine) Recompute(sheet *contracts.Sheet) *contracts.Sheet {
	pass := NewRecomputePass(sheet.Cells, e.evaluator)
	for _, cellKey := range RecomputeKeys(sheet.Cells) {
		pass.Evaluate(cellKey)
	}

	sheet.Computed = pass.Results()
	return sheet
}

// Hydrate prepares a sheet loaded from outside: graph is rebuilt for every cell, then recomputed
func (e *SheetEngine) Hydrate(sheet *contracts.Sheet) *contracts.Sheet {
	sheet.Dependencies = nil
	e.ensureSheet(sheet)
	return e.Recompute(sheet)
}

func (e *SheetEngine) recomputeAffected(sheet *contracts.Sheet, editedKeys []string) *contracts.Sheet {
	affected := map[string]bool{}
	for _, cellKey := range editedKeys {
		affected[cellKey] = true
		for _, dependant := range sheet.Dependencies.Dependants(cellKey) {
			affected[dependant] = true
		}
	}

	keys := RecomputeKeys(sheet.Cells)
	pass := NewRecomputePass(sheet.Cells, e.evaluator)
	for _, cellKey := range keys {
		if value, ok := sheet.Computed[cellKey]; ok && !affected[cellKey] {
			pass.Seed(cellKey, value)
		}
	}

	for _, cellKey := range keys {
		pass.Evaluate(cellKey)
	}

	sheet.Computed = pass.Results()
	return sheet
}

func (e *SheetEngine) ensureSheet(sheet *contracts.Sheet) {
	if sheet.Cells == nil {
		sheet.Cells = map[string]string{}
	}
	if sheet.ColumnWidths == nil {
		sheet.ColumnWidths = map[string]float64{}
	}
	if sheet.RowHeights == nil {
		sheet.RowHeights = map[string]float64{}
	}
	if sheet.Computed == nil {
		sheet.Computed = map[string]string{}
	}

	if sheet.Dependencies == nil {
		sheet.Dependencies = NewCellDependencyGraph()
		for _, cellKey := range sortedKeys(sheet.Cells) {
			e.RebuildDepsFor(sheet, cellKey)
		}
	}
}

// RecomputeKeys is every populated key plus every key referenced by a formula, sorted
func RecomputeKeys(cells map[string]string) []string {
	keys := newOrderedKeySet()
	for _, cellKey := range sortedKeys(cells) {
		keys.add(cellKey)
		keys.add(ExtractReferences(cells[cellKey])...)
	}

	sort.Strings(keys.keys)
	return keys.keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}
