package main

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
	"net/url"
	"sheetEngine/contracts"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	Serializer        contracts.SheetSerializer
	WebhookDispatcher contracts.WebhookDispatcher
	Broadcaster       contracts.SheetBroadcaster
	FileConverter     contracts.SheetFileConverter
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	// pointer, so an empty string (clear the cell) passes `required`
	Value *string `json:"value" binding:"required"`
}

type SetCellsRequest struct {
	Cells map[string]string `json:"cells" binding:"required"`
}

type CreateSheetRequest struct {
	Name string `json:"name"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

type SubscribeResponse struct {
	*contracts.Cell
	WebhookUrl string `json:"webhook_url"`
}

func NewApiController(
	sheetRepository contracts.SheetRepository, serializer contracts.SheetSerializer,
	webhookDispatcher contracts.WebhookDispatcher, broadcaster contracts.SheetBroadcaster,
	fileConverter contracts.SheetFileConverter,
) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		Serializer:        serializer,
		WebhookDispatcher: webhookDispatcher,
		Broadcaster:       broadcaster,
		FileConverter:     fileConverter,
	}
}

func (api *ApiController) ListSheetsAction(c *gin.Context) {
	sheets, err := api.SheetRepository.ListSheets()
	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, snapshotsOf(sheets))
	}
}

// SaveSheetsAction replaces the whole collection with the request body
func (api *ApiController) SaveSheetsAction(c *gin.Context) {
	var sheets []*contracts.Sheet
	var snapshots []contracts.SheetSnapshot

	body, err := c.GetRawData()
	if err == nil {
		snapshots, err = api.Serializer.UnmarshalSnapshots(body)
	}

	if err == nil {
		sheets, err = api.SheetRepository.SaveSheets(snapshots)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, snapshotsOf(sheets))
	}
}

func (api *ApiController) CreateSheetAction(c *gin.Context) {
	request := CreateSheetRequest{}
	var sheet *contracts.Sheet

	err := c.ShouldBindJSON(&request)
	if errors.Is(err, io.EOF) {
		// body is optional
		err = nil
	}

	if err == nil {
		sheet, err = api.SheetRepository.CreateSheet(request.Name)
	} else {
		err = badRequestError(err)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, sheet.Snapshot())
	}
}

func (api *ApiController) ImportSheetsAction(c *gin.Context) {
	var sheets []*contracts.Sheet
	var snapshots []contracts.SheetSnapshot

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			err = openErr
		} else {
			snapshots, err = api.FileConverter.Import(file)
			_ = file.Close()
		}
	} else {
		err = badRequestError(err)
	}

	if err == nil {
		sheets, err = api.SheetRepository.ImportSheets(snapshots)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, snapshotsOf(sheets))
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var sheet *contracts.Sheet

	err := c.ShouldBindUri(&params)
	if err == nil {
		sheet, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, sheet.Snapshot())
	}
}

func (api *ApiController) UpdateSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := contracts.SheetUpdate{}
	var sheet *contracts.Sheet

	err := c.ShouldBindUri(&params)
	if err == nil {
		if bindErr := c.ShouldBindJSON(&request); bindErr != nil {
			err = badRequestError(bindErr)
		}
	}

	if err == nil {
		sheet, err = api.SheetRepository.UpdateSheet(params.SheetId, request)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, sheet.Snapshot())
	}
}

func (api *ApiController) DeleteSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.SheetRepository.DeleteSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) ExportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var sheet *contracts.Sheet

	err := c.ShouldBindUri(&params)
	if err == nil {
		sheet, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	file, err := api.FileConverter.Export(sheet)
	if err != nil {
		api.respondError(c, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	buffer, err := file.WriteToBuffer()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(xlsxSheetName(sheet.Name)+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (api *ApiController) SetCellsAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := SetCellsRequest{}
	var sheet *contracts.Sheet

	err := c.ShouldBindUri(&params)
	if err == nil {
		if bindErr := c.ShouldBindJSON(&request); bindErr != nil {
			err = badRequestError(bindErr)
		}
	}

	if err == nil {
		sheet, err = api.SheetRepository.SetCells(params.SheetId, request.Cells)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, sheet.Snapshot())
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRepository.SetCell(params.SheetId, params.CellId, *request.Value)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		if response == nil {
			response = &contracts.Cell{Key: params.CellId}
		}
		if request.Value != nil {
			response.Value = *request.Value
		}
		response.Result = err.Error()
		c.JSON(http.StatusUnprocessableEntity, response)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

// SubscribeAction registers webhook which receives the cell every time its result changes
func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}
	var cellKey string

	err := c.ShouldBindUri(&params)
	if err == nil {
		if bindErr := c.ShouldBindJSON(&request); bindErr != nil {
			err = badRequestError(bindErr)
		} else if webhookUrl, parseErr := url.ParseRequestURI(request.WebhookUrl); parseErr != nil || webhookUrl.Host == "" {
			err = badRequestError(errors.New("webhook_url should be an absolute url"))
		}
	}

	if err == nil {
		cellKey, err = CanonicalizeCellKey(params.CellId)
	}

	if err == nil {
		_, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.SheetId, cellKey, request.WebhookUrl)

	cell, err := api.SheetRepository.GetCell(params.SheetId, cellKey)
	if errors.Is(err, contracts.CellNotFoundError) {
		cell, err = &contracts.Cell{Key: cellKey}, nil
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, SubscribeResponse{Cell: cell, WebhookUrl: request.WebhookUrl})
	}
}

func (api *ApiController) WebsocketAction(c *gin.Context) {
	api.Broadcaster.ServeWs(c.Writer, c.Request)
}

var RequestBodyError = errors.New("invalid request body")

func badRequestError(err error) error {
	return fmt.Errorf("%w: %w", RequestBodyError, err)
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, contracts.SheetNotFoundError), errors.Is(err, contracts.CellNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, RequestBodyError):
		status = http.StatusBadRequest
	case errors.Is(err, contracts.InvalidCellKeyError), errors.Is(err, contracts.SheetIdEmptyError),
		errors.Is(err, SheetIdDuplicateError), errors.Is(err, SerializerError), errors.Is(err, XlsxImportError):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func snapshotsOf(sheets []*contracts.Sheet) []contracts.SheetSnapshot {
	snapshots := make([]contracts.SheetSnapshot, 0, len(sheets))
	for _, sheet := range sheets {
		snapshots = append(snapshots, sheet.Snapshot())
	}
	return snapshots
}
