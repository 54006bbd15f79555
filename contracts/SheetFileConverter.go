package contracts

import (
	"github.com/xuri/excelize/v2"
	"io"
)

type SheetFileConverter interface {
	Export(sheet *Sheet) (*excelize.File, error)
	Import(reader io.Reader) ([]SheetSnapshot, error)
}
