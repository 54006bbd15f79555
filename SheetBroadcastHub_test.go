package main

import (
	json "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http/httptest"
	"sheetEngine/contracts"
	"strings"
	"testing"
	"time"
)

func _connectToHub(t *testing.T, hub *SheetBroadcastHub) (*websocket.Conn, func()) {
	server := httptest.NewServer(NewHttpHandler(SetupRouter(NewApiController(nil, nil, nil, hub, nil))))

	wsUrl := "ws" + strings.TrimPrefix(server.URL, "http") + WebsocketPath
	conn, _, err := websocket.DefaultDialer.Dial(wsUrl, nil)
	if !assert.NoError(t, err) {
		server.Close()
		t.FailNow()
	}

	return conn, func() {
		_ = conn.Close()
		server.Close()
	}
}

func _readBroadcastMessage(t *testing.T, conn *websocket.Conn) BroadcastMessage {
	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))

	messageType, payload, err := conn.ReadMessage()
	assert.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)

	message := BroadcastMessage{}
	assert.NoError(t, json.Unmarshal(payload, &message))
	return message
}

func TestSheetBroadcastHub(t *testing.T) {
	hub := NewSheetBroadcastHub(io.Discard)
	go hub.Run()
	defer hub.Close()

	conn, disconnect := _connectToHub(t, hub)
	defer disconnect()

	assert.Eventually(t, func() bool {
		return hub.ClientsCount() == 1
	}, time.Second*2, time.Millisecond*10)

	t.Run("broadcast sheet", func(t *testing.T) {
		hub.BroadcastSheet(_computedSheet("s1", map[string]string{"A1": "2", "B1": "=A1*A1"}))

		message := _readBroadcastMessage(t, conn)
		assert.Equal(t, SheetUpdatedEvent, message.Event)
		assert.Nil(t, message.Sheets)
		if assert.NotNil(t, message.Sheet) {
			assert.Equal(t, "s1", message.Sheet.Id)
			assert.Equal(t, "4", message.Sheet.Computed["B1"])
			assert.Equal(t, []string{"B1"}, message.Sheet.ReverseDeps["A1"])
		}
	})

	t.Run("broadcast sheets", func(t *testing.T) {
		hub.BroadcastSheets([]*contracts.Sheet{
			_computedSheet("s1", nil),
			_computedSheet("s2", map[string]string{"A1": "=1/0"}),
		})

		message := _readBroadcastMessage(t, conn)
		assert.Equal(t, SheetsUpdatedEvent, message.Event)
		assert.Nil(t, message.Sheet)
		if assert.Len(t, message.Sheets, 2) {
			assert.Equal(t, "s2", message.Sheets[1].Id)
			assert.Equal(t, contracts.ExpressionErrorSentinel, message.Sheets[1].Computed["A1"])
		}
	})

	t.Run("client disconnect", func(t *testing.T) {
		_ = conn.Close()

		assert.Eventually(t, func() bool {
			return hub.ClientsCount() == 0
		}, time.Second*2, time.Millisecond*10)

		hub.BroadcastSheet(_computedSheet("s1", nil))
	})
}

func TestSheetBroadcastHub_WithoutClients(t *testing.T) {
	hub := NewSheetBroadcastHub(io.Discard)

	hub.BroadcastSheet(_computedSheet("s1", nil))
	hub.BroadcastSheets(nil)

	assert.Equal(t, 0, hub.ClientsCount())
}

func TestSheetBroadcastHub_Close(t *testing.T) {
	hub := NewSheetBroadcastHub(io.Discard)
	go hub.Run()

	conn, disconnect := _connectToHub(t, hub)
	defer disconnect()

	assert.Eventually(t, func() bool {
		return hub.ClientsCount() == 1
	}, time.Second*2, time.Millisecond*10)

	hub.Close()
	hub.Close()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived), "unexpected error: %v", err)
}
