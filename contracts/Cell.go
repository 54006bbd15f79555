package contracts

import (
	"errors"
)

type Cell struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Result string `json:"result"`
}

var CellNotFoundError = errors.New("cell not found")

var InvalidCellKeyError = errors.New("cell key should be column letters followed by a row number (e.g. A1)")
