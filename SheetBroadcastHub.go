package main

import (
	"fmt"
	json "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"io"
	"net/http"
	"sheetEngine/contracts"
	"sync"
	"sync/atomic"
	"time"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	// clients only answer pings, incoming frames are drained and dropped
	maxMessageSize = 4096

	clientSendBufferSize = 16
)

const SheetUpdatedEvent = "sheet:updated"

const SheetsUpdatedEvent = "sheets:updated"

type BroadcastMessage struct {
	Event  string                    `json:"event"`
	Sheet  *contracts.SheetSnapshot  `json:"sheet,omitempty"`
	Sheets []contracts.SheetSnapshot `json:"sheets,omitempty"`
}

var broadcastUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SheetBroadcastHub pushes sheet snapshots to every connected websocket client
type SheetBroadcastHub struct {
	clients      map[*BroadcastClient]bool
	broadcast    chan []byte
	register     chan *BroadcastClient
	unregister   chan *BroadcastClient
	done         chan struct{}
	closeOnce    sync.Once
	clientsCount atomic.Int32
	logWriter    io.Writer
}

// BroadcastClient is a middleman between the websocket connection and the hub
type BroadcastClient struct {
	hub  *SheetBroadcastHub
	conn *websocket.Conn
	// Buffered channel of outbound messages.
	send chan []byte
}

func NewSheetBroadcastHub(logWriter io.Writer) *SheetBroadcastHub {
	return &SheetBroadcastHub{
		clients:    make(map[*BroadcastClient]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *BroadcastClient),
		unregister: make(chan *BroadcastClient),
		done:       make(chan struct{}),
		logWriter:  logWriter,
	}
}

func (h *SheetBroadcastHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.clientsCount.Store(int32(len(h.clients)))
			_, _ = fmt.Fprintln(h.logWriter, "WS client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				_, _ = fmt.Fprintln(h.logWriter, "WS client unregistered")
			}
			h.clientsCount.Store(int32(len(h.clients)))

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow client, drop it
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.clientsCount.Store(int32(len(h.clients)))

		case <-h.done:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.clientsCount.Store(0)
			return
		}
	}
}

func (h *SheetBroadcastHub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *SheetBroadcastHub) ClientsCount() int {
	return int(h.clientsCount.Load())
}

func (h *SheetBroadcastHub) BroadcastSheet(sheet *contracts.Sheet) {
	snapshot := sheet.Snapshot()
	h.publish(BroadcastMessage{
		Event: SheetUpdatedEvent,
		Sheet: &snapshot,
	})
}

func (h *SheetBroadcastHub) BroadcastSheets(sheets []*contracts.Sheet) {
	snapshots := make([]contracts.SheetSnapshot, len(sheets))
	for i, sheet := range sheets {
		snapshots[i] = sheet.Snapshot()
	}

	h.publish(BroadcastMessage{
		Event:  SheetsUpdatedEvent,
		Sheets: snapshots,
	})
}

func (h *SheetBroadcastHub) publish(message BroadcastMessage) {
	if h.ClientsCount() == 0 {
		return
	}

	payload, err := json.Marshal(message)
	if err != nil {
		_, _ = fmt.Fprintf(h.logWriter, "WS message encode error: %s\n", err)
		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

func (h *SheetBroadcastHub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := broadcastUpgrader.Upgrade(w, r, nil)
	if err != nil {
		_, _ = fmt.Fprintf(h.logWriter, "WS upgrade error: %s\n", err)
		return
	}

	client := &BroadcastClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, clientSendBufferSize),
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump keeps the read deadline moving and detects closed connections
func (c *BroadcastClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump sends every queued message as its own text frame
func (c *BroadcastClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				// The hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
