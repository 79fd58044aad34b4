package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldbach8/DespachoComex/internal/service"
)

// BKHandler handles the capital-goods tariff code list endpoints.
type BKHandler struct {
	bkService service.BKService
}

// NewBKHandler creates a new BKHandler.
func NewBKHandler(bkService service.BKService) *BKHandler {
	return &BKHandler{bkService: bkService}
}

// UpdateInput is the DTO for replacing the BK code list from pasted text.
type UpdateInput struct {
	FullText string `json:"full_text" binding:"required"`
}

// Update handles PUT /api/v1/bk-codes
func (h *BKHandler) Update(c *gin.Context) {
	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	count, err := h.bkService.UpdateFromText(c.Request.Context(), input.FullText)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"codes": count})
}

// List handles GET /api/v1/bk-codes
func (h *BKHandler) List(c *gin.Context) {
	codes, err := h.bkService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, codes)
}
