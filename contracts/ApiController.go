package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	ListSheetsAction(c *gin.Context)
	SaveSheetsAction(c *gin.Context)
	CreateSheetAction(c *gin.Context)
	ImportSheetsAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	UpdateSheetAction(c *gin.Context)
	DeleteSheetAction(c *gin.Context)
	ExportSheetAction(c *gin.Context)
	SetCellsAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
	WebsocketAction(c *gin.Context)
}
