package contracts

type SheetEngine interface {
	NewSheet(id string, name string) *Sheet
	FromSnapshot(snapshot SheetSnapshot) (*Sheet, error)
	ApplyEdit(sheet *Sheet, cellKey string, rawText string) (*Sheet, error)
	ApplyEdits(sheet *Sheet, edits map[string]string) (*Sheet, error)
	Recompute(sheet *Sheet) *Sheet
	Hydrate(sheet *Sheet) *Sheet
}
