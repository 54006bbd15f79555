package main

import (
	"bytes"
	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"
	"net/http/httptest"
	"os"
	"sync"
)

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}

func _parseJsonListBody(w *httptest.ResponseRecorder) (response []map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}

func _createTmpDb() (*bbolt.DB, func()) {
	f, _ := os.CreateTemp("", "db_*.db")
	_ = f.Close()
	_ = os.Remove(f.Name())

	db, dbErr := bbolt.Open(f.Name(), 0600, nil)
	if dbErr != nil {
		panic(dbErr)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(f.Name())
	}
}

func _makeStringRef(value string) *string {
	return &value
}

func _newTestEngine(incremental bool) *SheetEngine {
	return NewSheetEngine(NewFormulaEvaluator(NewArithmeticEvaluator()), incremental)
}

// _syncBuffer collects log output written from worker goroutines
type _syncBuffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (b *_syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

func (b *_syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}
