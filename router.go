package main

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"sheetEngine/contracts"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

const WebsocketPath = "/api/" + ApiVersion + "/ws"

func SetupRouter(controller contracts.ApiController, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/ws", controller.WebsocketAction)

	apiRouterGroup.GET("/sheets", controller.ListSheetsAction)
	apiRouterGroup.PUT("/sheets", controller.SaveSheetsAction)
	apiRouterGroup.POST("/sheets", controller.CreateSheetAction)
	apiRouterGroup.POST("/sheets/import", controller.ImportSheetsAction)

	apiRouterGroup.GET("/sheets/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.PATCH("/sheets/:sheet_id", controller.UpdateSheetAction)
	apiRouterGroup.DELETE("/sheets/:sheet_id", controller.DeleteSheetAction)
	apiRouterGroup.GET("/sheets/:sheet_id/export", controller.ExportSheetAction)

	apiRouterGroup.POST("/sheets/:sheet_id/cells", controller.SetCellsAction)
	apiRouterGroup.POST("/sheets/:sheet_id/cells/:cell_id/"+subscribePath, controller.SubscribeAction)
	apiRouterGroup.POST("/sheets/:sheet_id/cells/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/sheets/:sheet_id/cells/:cell_id", controller.GetCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
