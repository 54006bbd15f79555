package main

import (
	"bytes"
	"errors"
	"fmt"
	json "github.com/bytedance/sonic"
	"sheetEngine/contracts"
)

var SerializerError = errors.New("invalid serialized data")

type sheetMeta struct {
	Id           string             `json:"id"`
	Name         string             `json:"name"`
	Position     uint64             `json:"position"`
	ColumnWidths map[string]float64 `json:"columnWidths"`
	RowHeights   map[string]float64 `json:"rowHeights"`
}

type SheetJsonSerializer struct {
}

func NewSheetJsonSerializer() *SheetJsonSerializer {
	return &SheetJsonSerializer{}
}

func (s *SheetJsonSerializer) MarshalMeta(sheet *contracts.Sheet) ([]byte, error) {
	return json.Marshal(sheetMeta{
		Id:           sheet.Id,
		Name:         sheet.Name,
		Position:     sheet.Position,
		ColumnWidths: sheet.ColumnWidths,
		RowHeights:   sheet.RowHeights,
	})
}

func (s *SheetJsonSerializer) UnmarshalMeta(data []byte, sheet *contracts.Sheet) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: sheet meta is empty", SerializerError)
	}

	meta := sheetMeta{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("%w: %s", SerializerError, err.Error())
	}

	sheet.Id = meta.Id
	sheet.Name = meta.Name
	sheet.Position = meta.Position
	if meta.ColumnWidths != nil {
		sheet.ColumnWidths = meta.ColumnWidths
	}
	if meta.RowHeights != nil {
		sheet.RowHeights = meta.RowHeights
	}

	return nil
}

func (s *SheetJsonSerializer) MarshalSnapshots(sheets []*contracts.Sheet) ([]byte, error) {
	snapshots := make([]contracts.SheetSnapshot, 0, len(sheets))
	for _, sheet := range sheets {
		snapshots = append(snapshots, sheet.Snapshot())
	}

	return json.Marshal(snapshots)
}

// UnmarshalSnapshots accepts a list of snapshots or a single snapshot object
func (s *SheetJsonSerializer) UnmarshalSnapshots(data []byte) ([]contracts.SheetSnapshot, error) {
	data = bytes.TrimSpace(data)
	snapshots := make([]contracts.SheetSnapshot, 0)

	var err error
	if len(data) > 0 && data[0] == '{' {
		snapshot := contracts.SheetSnapshot{}
		err = json.Unmarshal(data, &snapshot)
		snapshots = append(snapshots, snapshot)
	} else {
		err = json.Unmarshal(data, &snapshots)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s", SerializerError, err.Error())
	}

	return snapshots, nil
}
