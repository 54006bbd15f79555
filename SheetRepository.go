package main

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
	"sheetEngine/contracts"
	"sort"
	"strconv"
)

/**
 * Storage layout:
 *   sheets (bucket)
 *     <sheet id> (bucket)
 *       meta  => serialized sheet meta (name, position, sizes)
 *       cells (bucket)
 *         <cell key> => raw cell text
 * Computed values and dependencies are never stored, every load hydrates the sheet.
 */
var sheetsBucketName = []byte("sheets")

var cellsBucketName = []byte("cells")

var metaKey = []byte("meta")

const DefaultSheetNamePrefix = "Sheet"

var SheetIdDuplicateError = errors.New("sheet id is used more than once")

type SheetRepository struct {
	db                *bbolt.DB
	engine            contracts.SheetEngine
	serializer        contracts.SheetSerializer
	webhookDispatcher contracts.WebhookDispatcher
	broadcaster       contracts.SheetBroadcaster
	newSheetId        func() string
}

func NewSheetRepository(
	db *bbolt.DB, engine contracts.SheetEngine, serializer contracts.SheetSerializer,
	webhookDispatcher contracts.WebhookDispatcher, broadcaster contracts.SheetBroadcaster,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		engine:            engine,
		serializer:        serializer,
		webhookDispatcher: webhookDispatcher,
		broadcaster:       broadcaster,
		newSheetId:        uuid.NewString,
	}
}

func (s *SheetRepository) ListSheets() (sheets []*contracts.Sheet, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		sheets, err = s.loadAllSheets(tx)
		return err
	})

	return
}

func (s *SheetRepository) GetSheet(sheetId string) (sheet *contracts.Sheet, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		sheet, err = s.loadSheet(tx, sheetId)
		return err
	})

	return
}

func (s *SheetRepository) CreateSheet(name string) (sheet *contracts.Sheet, err error) {
	err = s.db.Update(func(tx *bbolt.Tx) error {
		if name == "" {
			count, err := s.countSheets(tx)
			if err != nil {
				return err
			}
			name = DefaultSheetNamePrefix + strconv.Itoa(count+1)
		}

		sheet = s.engine.NewSheet(s.newSheetId(), name)
		return s.storeSheet(tx, sheet)
	})

	if err == nil {
		s.broadcastSheet(sheet)
	}

	return
}

func (s *SheetRepository) UpdateSheet(sheetId string, update contracts.SheetUpdate) (sheet *contracts.Sheet, err error) {
	err = s.db.Update(func(tx *bbolt.Tx) error {
		sheet, err = s.loadSheet(tx, sheetId)
		if err != nil {
			return err
		}

		if update.Name != nil {
			sheet.Name = *update.Name
		}
		if update.ColumnWidths != nil {
			sheet.ColumnWidths = update.ColumnWidths
		}
		if update.RowHeights != nil {
			sheet.RowHeights = update.RowHeights
		}

		return s.storeMeta(tx, sheet)
	})

	if err == nil {
		s.broadcastSheet(sheet)
	}

	return
}

func (s *SheetRepository) DeleteSheet(sheetId string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(sheetsBucketName)
		if root == nil || sheetId == "" {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		err := root.DeleteBucket([]byte(sheetId))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}
		return err
	})

	if err == nil && s.broadcaster != nil {
		if sheets, listErr := s.ListSheets(); listErr == nil {
			s.broadcaster.BroadcastSheets(sheets)
		}
	}

	return err
}

// SaveSheets replaces the whole collection, order of snapshots becomes sheets order
func (s *SheetRepository) SaveSheets(snapshots []contracts.SheetSnapshot) ([]*contracts.Sheet, error) {
	sheets, err := s.sheetsFromSnapshots(snapshots, false)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(sheetsBucketName) != nil {
			if err := tx.DeleteBucket(sheetsBucketName); err != nil {
				return err
			}
		}

		for _, sheet := range sheets {
			sheet.Position = 0
			if err := s.storeSheet(tx, sheet); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSheets(sheets)
	}

	return sheets, nil
}

// ImportSheets appends snapshots as new sheets, incoming ids are replaced
func (s *SheetRepository) ImportSheets(snapshots []contracts.SheetSnapshot) ([]*contracts.Sheet, error) {
	sheets, err := s.sheetsFromSnapshots(snapshots, true)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		for _, sheet := range sheets {
			if err := s.storeSheet(tx, sheet); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	for _, sheet := range sheets {
		s.broadcastSheet(sheet)
	}

	return sheets, nil
}

func (s *SheetRepository) SetCell(sheetId string, cellId string, value string) (cell *contracts.Cell, err error) {
	cellKey, err := CanonicalizeCellKey(cellId)
	if err != nil {
		return &contracts.Cell{Key: cellId, Value: value}, err
	}

	var sheet *contracts.Sheet
	var changed []*contracts.Cell
	written := false

	err = s.db.Update(func(tx *bbolt.Tx) error {
		sheet, err = s.loadSheet(tx, sheetId)
		if err != nil {
			return err
		}

		if sheet.Cells[cellKey] == value {
			// nothing to write, stored value is the same
			cell = s.makeCell(sheet, cellKey)
			return nil
		}

		previous := sheet.Computed
		if _, err = s.engine.ApplyEdit(sheet, cellKey, value); err != nil {
			return err
		}

		changed = changedCells(sheet, previous)
		cell = s.makeCell(sheet, cellKey)
		written = true

		return s.storeCells(tx, sheetId, map[string]string{cellKey: value})
	})

	if err != nil {
		if cell == nil {
			cell = &contracts.Cell{Key: cellKey, Value: value}
		}
		return
	}

	if written {
		s.notify(sheet, changed)
	}

	return
}

func (s *SheetRepository) SetCells(sheetId string, values map[string]string) (sheet *contracts.Sheet, err error) {
	var changed []*contracts.Cell

	err = s.db.Update(func(tx *bbolt.Tx) error {
		sheet, err = s.loadSheet(tx, sheetId)
		if err != nil {
			return err
		}

		previous := sheet.Computed
		if _, err = s.engine.ApplyEdits(sheet, values); err != nil {
			return err
		}

		changed = changedCells(sheet, previous)

		canonicalValues := make(map[string]string, len(values))
		for cellId, value := range values {
			cellKey, _ := CanonicalizeCellKey(cellId)
			canonicalValues[cellKey] = value
		}
		return s.storeCells(tx, sheetId, canonicalValues)
	})

	if err == nil {
		s.notify(sheet, changed)
	}

	return
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (cell *contracts.Cell, err error) {
	cellKey, err := CanonicalizeCellKey(cellId)
	if err != nil {
		return nil, err
	}

	err = s.db.View(func(tx *bbolt.Tx) error {
		sheet, err := s.loadSheet(tx, sheetId)
		if err != nil {
			return err
		}

		_, hasValue := sheet.Cells[cellKey]
		_, hasResult := sheet.Computed[cellKey]
		if !hasValue && !hasResult {
			return fmt.Errorf("%s: %w", cellKey, contracts.CellNotFoundError)
		}

		cell = s.makeCell(sheet, cellKey)
		return nil
	})

	return
}

func (s *SheetRepository) makeCell(sheet *contracts.Sheet, cellKey string) *contracts.Cell {
	return &contracts.Cell{
		Key:    cellKey,
		Value:  sheet.Cells[cellKey],
		Result: sheet.Computed[cellKey],
	}
}

func (s *SheetRepository) sheetsFromSnapshots(snapshots []contracts.SheetSnapshot, newIds bool) ([]*contracts.Sheet, error) {
	sheets := make([]*contracts.Sheet, 0, len(snapshots))
	seen := map[string]bool{}

	for index, snapshot := range snapshots {
		if newIds {
			snapshot.Id = s.newSheetId()
		}

		if snapshot.Id == "" {
			return nil, fmt.Errorf("sheet #%d: %w", index, contracts.SheetIdEmptyError)
		} else if seen[snapshot.Id] {
			return nil, fmt.Errorf("sheet %s: %w", snapshot.Id, SheetIdDuplicateError)
		}
		seen[snapshot.Id] = true

		if snapshot.Name == "" {
			snapshot.Name = DefaultSheetNamePrefix + strconv.Itoa(index+1)
		}

		sheet, err := s.engine.FromSnapshot(snapshot)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", snapshot.Id, err)
		}
		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

func (s *SheetRepository) loadAllSheets(tx *bbolt.Tx) ([]*contracts.Sheet, error) {
	sheets := make([]*contracts.Sheet, 0)
	root := tx.Bucket(sheetsBucketName)
	if root == nil {
		return sheets, nil
	}

	err := root.ForEach(func(k, v []byte) error {
		// nested buckets have nil value
		if v != nil {
			return nil
		}

		sheet, err := s.loadSheet(tx, string(k))
		if err == nil {
			sheets = append(sheets, sheet)
		}
		return err
	})

	sort.SliceStable(sheets, func(i, j int) bool {
		return sheets[i].Position < sheets[j].Position
	})

	return sheets, err
}

func (s *SheetRepository) loadSheet(tx *bbolt.Tx, sheetId string) (*contracts.Sheet, error) {
	bucket := s.sheetBucket(tx, sheetId)
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	sheet := s.engine.NewSheet(sheetId, "")
	if err := s.serializer.UnmarshalMeta(bucket.Get(metaKey), sheet); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheetId, err)
	}
	sheet.Id = sheetId

	if cells := bucket.Bucket(cellsBucketName); cells != nil {
		err := cells.ForEach(func(k, v []byte) error {
			sheet.Cells[string(k)] = string(v)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return s.engine.Hydrate(sheet), nil
}

func (s *SheetRepository) sheetBucket(tx *bbolt.Tx, sheetId string) *bbolt.Bucket {
	root := tx.Bucket(sheetsBucketName)
	if root == nil || sheetId == "" {
		return nil
	}

	return root.Bucket([]byte(sheetId))
}

func (s *SheetRepository) countSheets(tx *bbolt.Tx) (int, error) {
	root := tx.Bucket(sheetsBucketName)
	if root == nil {
		return 0, nil
	}

	count := 0
	err := root.ForEach(func(k, v []byte) error {
		if v == nil {
			count++
		}
		return nil
	})
	return count, err
}

func (s *SheetRepository) storeSheet(tx *bbolt.Tx, sheet *contracts.Sheet) error {
	root, err := tx.CreateBucketIfNotExists(sheetsBucketName)
	if err != nil {
		return err
	}

	bucket, err := root.CreateBucketIfNotExists([]byte(sheet.Id))
	if err != nil {
		return err
	}

	if sheet.Position == 0 {
		if sheet.Position, err = root.NextSequence(); err != nil {
			return err
		}
	}

	if err = s.storeMeta(tx, sheet); err != nil {
		return err
	}

	if bucket.Bucket(cellsBucketName) != nil {
		if err = bucket.DeleteBucket(cellsBucketName); err != nil {
			return err
		}
	}

	cells, err := bucket.CreateBucket(cellsBucketName)
	if err != nil {
		return err
	}

	for cellKey, value := range sheet.Cells {
		if err = cells.Put([]byte(cellKey), []byte(value)); err != nil {
			return err
		}
	}

	return nil
}

func (s *SheetRepository) storeMeta(tx *bbolt.Tx, sheet *contracts.Sheet) error {
	bucket := s.sheetBucket(tx, sheet.Id)
	if bucket == nil {
		return fmt.Errorf("%s: %w", sheet.Id, contracts.SheetNotFoundError)
	}

	meta, err := s.serializer.MarshalMeta(sheet)
	if err != nil {
		return err
	}

	return bucket.Put(metaKey, meta)
}

// storeCells writes raw values of edited cells, empty value deletes the record
func (s *SheetRepository) storeCells(tx *bbolt.Tx, sheetId string, values map[string]string) error {
	bucket := s.sheetBucket(tx, sheetId)
	if bucket == nil {
		return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	cells, err := bucket.CreateBucketIfNotExists(cellsBucketName)
	if err != nil {
		return err
	}

	for cellKey, value := range values {
		if value == "" {
			err = cells.Delete([]byte(cellKey))
		} else {
			err = cells.Put([]byte(cellKey), []byte(value))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// notify sends the sheet to websocket clients after every write, webhooks get only cells with a new result
func (s *SheetRepository) notify(sheet *contracts.Sheet, changed []*contracts.Cell) {
	if s.webhookDispatcher != nil && len(changed) > 0 {
		s.webhookDispatcher.Notify(sheet.Id, changed)
	}

	s.broadcastSheet(sheet)
}

func (s *SheetRepository) broadcastSheet(sheet *contracts.Sheet) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSheet(sheet)
	}
}

// changedCells lists cells whose computed value differs from previous pass, sorted by key.
// Cells which dropped out of the pass are reported with an empty result.
func changedCells(sheet *contracts.Sheet, previous map[string]string) []*contracts.Cell {
	cellKeys := sortedKeys(sheet.Computed)
	for cellKey := range previous {
		if _, ok := sheet.Computed[cellKey]; !ok {
			cellKeys = append(cellKeys, cellKey)
		}
	}
	sort.Strings(cellKeys)

	changed := make([]*contracts.Cell, 0)
	for _, cellKey := range cellKeys {
		before, existed := previous[cellKey]
		if _, exists := sheet.Computed[cellKey]; !exists && before == "" {
			continue
		}
		if existed && before == sheet.Computed[cellKey] {
			continue
		}

		changed = append(changed, &contracts.Cell{
			Key:    cellKey,
			Value:  sheet.Cells[cellKey],
			Result: sheet.Computed[cellKey],
		})
	}

	return changed
}
