package main

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"io"
	"sheetEngine/contracts"
	"time"
)

var DatabaseFilepathEmptyError = errors.New("database filepath is not configured")

type ServiceContainer struct {
	Database          *bbolt.DB
	SheetEngine       contracts.SheetEngine
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	BroadcastHub      *SheetBroadcastHub
	FileConverter     contracts.SheetFileConverter
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config AppConfig, logWriter io.Writer) (container ServiceContainer, err error) {
	if config.DatabaseFilepath == "" {
		return container, DatabaseFilepathEmptyError
	}

	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	serializer := NewSheetJsonSerializer()

	container.SheetEngine = NewSheetEngine(NewFormulaEvaluator(NewArithmeticEvaluator()), config.IncrementalRecompute)
	container.WebhookDispatcher = NewWebhookDispatcher(config.WebhookWorkers, logWriter)
	container.BroadcastHub = NewSheetBroadcastHub(logWriter)
	container.FileConverter = NewXlsxConverter()
	container.SheetRepository = NewSheetRepository(
		container.Database, container.SheetEngine, serializer, container.WebhookDispatcher, container.BroadcastHub,
	)
	container.ApiController = NewApiController(
		container.SheetRepository, serializer, container.WebhookDispatcher, container.BroadcastHub, container.FileConverter,
	)

	container.Router = SetupRouter(container.ApiController, gin.LoggerWithWriter(logWriter), gin.Recovery())

	return
}
