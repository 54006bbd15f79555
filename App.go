package main

import (
	"fmt"
	"github.com/NYTimes/gziphandler"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
)

const ExitCodeMainError = 1

func RunApp(config AppConfig, logWriter io.Writer) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config, logWriter)

	if err == nil {
		defer serviceContainer.Database.Close()

		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()

		go serviceContainer.BroadcastHub.Run()
		defer serviceContainer.BroadcastHub.Close()

		_, _ = fmt.Fprintf(logWriter, "Listening on %s\n", config.ListenAddr)
		err = http.ListenAndServe(config.ListenAddr, NewHttpHandler(serviceContainer.Router))
	}

	return err
}

// NewHttpHandler compresses every response except the websocket endpoint, which must stay a plain hijackable connection
func NewHttpHandler(router http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(WebsocketPath, router)
	mux.Handle("/", gziphandler.GzipHandler(router))

	return mux
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
