package main

import (
	"bytes"
	"fmt"
	json "github.com/bytedance/sonic"
	"io"
	"net/http"
	"sheetEngine/contracts"
	"sync"
	"time"
)

const DefaultWebhookWorkersCount = 5

const webhookQueueSize = 20

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

type WebhookDispatcher struct {
	queue        chan WebhookSendCommand
	closing      chan struct{}
	closeOnce    sync.Once
	workers      sync.WaitGroup
	workersCount int
	mutex        sync.RWMutex
	webhooks     map[string]SheetWebhooks
	client       *http.Client
	logWriter    io.Writer
}

func NewWebhookDispatcher(workersCount int, logWriter io.Writer) *WebhookDispatcher {
	if workersCount <= 0 {
		workersCount = DefaultWebhookWorkersCount
	}

	return &WebhookDispatcher{
		queue:        make(chan WebhookSendCommand, webhookQueueSize),
		closing:      make(chan struct{}),
		workersCount: workersCount,
		webhooks:     map[string]SheetWebhooks{},
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logWriter: logWriter,
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, cellKey string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		manager.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[sheetId], cellKey)
	} else {
		manager.webhooks[sheetId][cellKey] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string, cellKey string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[sheetId][cellKey]
}

// Notify queues cells which have a subscription, sending happens on workers
func (manager *WebhookDispatcher) Notify(sheetId string, cells []*contracts.Cell) {
	commands := make([]WebhookSendCommand, 0)

	manager.mutex.RLock()
	for _, cell := range cells {
		if webhook, ok := manager.webhooks[sheetId][cell.Key]; ok {
			commands = append(commands, WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			})
		}
	}
	manager.mutex.RUnlock()

	if len(commands) > 0 {
		go manager.addToQueue(commands)
	}
}

func (manager *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	for _, command := range commands {
		select {
		case manager.queue <- command:
		case <-manager.closing:
			return
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	manager.closeOnce.Do(func() {
		close(manager.closing)
	})
	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for {
		select {
		case command := <-manager.queue:
			manager.send(command)
		case <-manager.closing:
			return
		}
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	payload, err := json.Marshal(command.Cell)
	if err != nil {
		_, _ = fmt.Fprintf(manager.logWriter, "Webhook payload error: %s\n", err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		_, _ = fmt.Fprintf(manager.logWriter, "Webhook send error: %s\n", err)
		return
	}
	_ = response.Body.Close()

	if response.StatusCode >= 300 {
		_, _ = fmt.Fprintf(manager.logWriter, "Unexpected webhook response HTTP status: %s\n", response.Status)
	}
}
