package contracts

type SheetSerializer interface {
	MarshalMeta(sheet *Sheet) ([]byte, error)
	UnmarshalMeta(data []byte, sheet *Sheet) error
	MarshalSnapshots(sheets []*Sheet) ([]byte, error)
	UnmarshalSnapshots(data []byte) ([]SheetSnapshot, error)
}
