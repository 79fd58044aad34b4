package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goldbach8/DespachoComex/internal/service"
)

// DespachoHandler handles despacho ingestion and review endpoints.
type DespachoHandler struct {
	despachoService service.DespachoService
}

// NewDespachoHandler creates a new DespachoHandler.
func NewDespachoHandler(despachoService service.DespachoService) *DespachoHandler {
	return &DespachoHandler{despachoService: despachoService}
}

// Ingest handles POST /api/v1/despachos
func (h *DespachoHandler) Ingest(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input service.IngestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	despacho, err := h.despachoService.Ingest(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, despacho)
}

// List handles GET /api/v1/despachos
func (h *DespachoHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	despachos, total, err := h.despachoService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, despachos, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/despachos/:id
func (h *DespachoHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid despacho id")
		return
	}

	despacho, err := h.despachoService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, despacho)
}

// CorrectItem handles PATCH /api/v1/despachos/:id/items/:itemID
func (h *DespachoHandler) CorrectItem(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	despachoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid despacho id")
		return
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
		return
	}

	var input service.CorrectItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if input.FobAmount == nil && input.Provider == nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "at least one of fob_amount or provider is required")
		return
	}

	item, err := h.despachoService.CorrectItem(c.Request.Context(), despachoID, itemID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}
