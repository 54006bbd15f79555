package main

import (
	"errors"
	"fmt"
	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
	"io"
	"sheetEngine/contracts"
	"strconv"
	"strings"
)

var XlsxImportError = errors.New("invalid xlsx file")

const defaultXlsxSheetName = "Sheet1"

// pixel sizes used by clients are converted to excel units
const (
	pixelsPerColumnWidthUnit = 7.0
	pointsPerPixel           = 0.75
	maxXlsxColumnWidth       = 255.0
	maxXlsxRowHeight         = 409.0
)

var xlsxSheetNameReplacer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
)

type XlsxConverter struct {
}

func NewXlsxConverter() *XlsxConverter {
	return &XlsxConverter{}
}

// Export writes computed values of every cell, formula cells also keep their formula
func (x *XlsxConverter) Export(sheet *contracts.Sheet) (*excelize.File, error) {
	file := excelize.NewFile()

	name := xlsxSheetName(sheet.Name)
	if name != defaultXlsxSheetName {
		if err := file.SetSheetName(defaultXlsxSheetName, name); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	for _, cellKey := range sortedKeys(sheet.Cells) {
		if !fitsXlsxGrid(cellKey) {
			continue
		}
		if err := x.exportCell(file, name, cellKey, sheet.Cells[cellKey], sheet.Computed[cellKey]); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("cell %s: %w", cellKey, err)
		}
	}

	for index, width := range sheet.ColumnWidths {
		col, err := strconv.Atoi(index)
		if err != nil || col < 0 || col >= excelize.MaxColumns || width <= 0 {
			continue
		}

		letters := columnLetters(col)
		if err = file.SetColWidth(name, letters, letters, clampSize(width/pixelsPerColumnWidthUnit, maxXlsxColumnWidth)); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	for index, height := range sheet.RowHeights {
		row, err := strconv.Atoi(index)
		if err != nil || row < 0 || row >= excelize.TotalRows || height <= 0 {
			continue
		}

		if err = file.SetRowHeight(name, row+1, clampSize(height*pointsPerPixel, maxXlsxRowHeight)); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return file, nil
}

func (x *XlsxConverter) exportCell(file *excelize.File, sheetName string, cellKey string, raw string, computed string) error {
	var err error
	if number, ok := ParseNumber(computed); ok {
		err = file.SetCellFloat(sheetName, cellKey, number, -1, 64)
	} else {
		err = file.SetCellStr(sheetName, cellKey, computed)
	}

	if err == nil && IsFormula(raw) {
		err = file.SetCellFormula(sheetName, cellKey, formulaBody(raw))
	}

	return err
}

// Import turns every worksheet into a snapshot, ids are left empty for the caller
func (x *XlsxConverter) Import(reader io.Reader) ([]contracts.SheetSnapshot, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", XlsxImportError, err.Error())
	}
	defer func() {
		_ = file.Close()
	}()

	snapshots := make([]contracts.SheetSnapshot, 0)
	for _, sheetName := range file.GetSheetList() {
		cells, err := x.importCells(file, sheetName)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %s: %s", XlsxImportError, sheetName, err.Error())
		}

		snapshots = append(snapshots, contracts.SheetSnapshot{
			Name:         sheetName,
			Cells:        cells,
			ColumnWidths: map[string]float64{},
			RowHeights:   map[string]float64{},
		})
	}

	return snapshots, nil
}

func (x *XlsxConverter) importCells(file *excelize.File, sheetName string) (map[string]string, error) {
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cells := map[string]string{}
	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cellKey := ToKey(colIndex, rowIndex)

			formula, err := file.GetCellFormula(sheetName, cellKey)
			if err != nil {
				return nil, err
			}
			if formula != "" {
				value = contracts.FormulaPrefix + relativeFormula(strings.TrimPrefix(formula, contracts.FormulaPrefix))
			}

			if value != "" {
				cells[cellKey] = value
			}
		}
	}

	return cells, nil
}

// relativeFormula drops absolute markers from references, $A$1:B$2 becomes A1:B2
func relativeFormula(formula string) string {
	if !strings.Contains(formula, "$") {
		return formula
	}

	ps := efp.ExcelParser()
	for _, token := range ps.Parse(formula) {
		if token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeRange && strings.Contains(token.TValue, "$") {
			formula = strings.ReplaceAll(formula, token.TValue, strings.ReplaceAll(token.TValue, "$", ""))
		}
	}

	return formula
}

// fitsXlsxGrid is false for keys past XFD column or the last worksheet row, such cells are not exported
func fitsXlsxGrid(cellKey string) bool {
	col, row, err := FromKey(cellKey)
	return err == nil && col < excelize.MaxColumns && row < excelize.TotalRows
}

func xlsxSheetName(name string) string {
	name = strings.TrimSpace(xlsxSheetNameReplacer.Replace(name))
	name = strings.Trim(name, "'")

	if runes := []rune(name); len(runes) > excelize.MaxSheetNameLength {
		name = string(runes[:excelize.MaxSheetNameLength])
	}

	if name == "" {
		return defaultXlsxSheetName
	}

	return name
}

func clampSize(size float64, max float64) float64 {
	if size > max {
		return max
	}
	return size
}
