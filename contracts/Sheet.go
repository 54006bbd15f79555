package contracts

import "errors"

type Sheet struct {
	Id           string
	Name         string
	Position     uint64
	Cells        map[string]string
	ColumnWidths map[string]float64
	RowHeights   map[string]float64
	Computed     map[string]string
	Dependencies DependencyGraph
}

// SheetSnapshot is the unit exchanged with clients and files
type SheetSnapshot struct {
	Id           string              `json:"id"`
	Name         string              `json:"name"`
	Cells        map[string]string   `json:"cells"`
	ColumnWidths map[string]float64  `json:"columnWidths"`
	RowHeights   map[string]float64  `json:"rowHeights"`
	ForwardDeps  map[string][]string `json:"forwardDeps"`
	ReverseDeps  map[string][]string `json:"reverseDeps"`
	Computed     map[string]string   `json:"computed"`
}

type SheetUpdate struct {
	Name         *string            `json:"name"`
	ColumnWidths map[string]float64 `json:"columnWidths"`
	RowHeights   map[string]float64 `json:"rowHeights"`
}

var SheetNotFoundError = errors.New("sheet not found")

var SheetIdEmptyError = errors.New("sheet id should not be empty")

func (s *Sheet) Snapshot() SheetSnapshot {
	snapshot := SheetSnapshot{
		Id:           s.Id,
		Name:         s.Name,
		Cells:        nonNilStrings(s.Cells),
		ColumnWidths: nonNilFloats(s.ColumnWidths),
		RowHeights:   nonNilFloats(s.RowHeights),
		Computed:     nonNilStrings(s.Computed),
	}

	if s.Dependencies != nil {
		snapshot.ForwardDeps = s.Dependencies.ForwardMap()
		snapshot.ReverseDeps = s.Dependencies.ReverseMap()
	} else {
		snapshot.ForwardDeps = map[string][]string{}
		snapshot.ReverseDeps = map[string][]string{}
	}

	return snapshot
}

func nonNilStrings(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func nonNilFloats(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
