package contracts

type SheetRepository interface {
	ListSheets() ([]*Sheet, error)
	GetSheet(sheetId string) (*Sheet, error)
	CreateSheet(name string) (*Sheet, error)
	UpdateSheet(sheetId string, update SheetUpdate) (*Sheet, error)
	DeleteSheet(sheetId string) error
	SaveSheets(snapshots []SheetSnapshot) ([]*Sheet, error)
	ImportSheets(snapshots []SheetSnapshot) ([]*Sheet, error)
	SetCell(sheetId string, cellId string, value string) (*Cell, error)
	SetCells(sheetId string, values map[string]string) (*Sheet, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
}
