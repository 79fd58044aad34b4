package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/export"
	"github.com/goldbach8/DespachoComex/internal/service"
)

// ReportHandler serves grouped reports in JSON, CSV, or XLSX form.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportRequest carries the optional raw-brand to canonical-provider
// mapping applied while grouping.
type ReportRequest struct {
	Mapping map[string]string `json:"mapping"`
}

// Grouped handles GET /api/v1/despachos/:id/report?format=json|csv|xlsx
func (h *ReportHandler) Grouped(c *gin.Context) {
	despachoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid despacho id")
		return
	}

	format, ok := domain.AllowedReportFormats[c.DefaultQuery("format", "json")]
	if !ok {
		HandleError(c, domain.ErrInvalidReportFmt)
		return
	}

	var req ReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
	}

	rep, err := h.reportService.Grouped(c.Request.Context(), despachoID, req.Mapping)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format {
	case domain.ReportFormatCSV:
		h.respondCSV(c, rep)
	case domain.ReportFormatXLSX:
		h.respondXLSX(c, rep)
	default:
		RespondOK(c, rep)
	}
}

func (h *ReportHandler) respondCSV(c *gin.Context, rep *service.GroupedReport) {
	var buf bytes.Buffer
	buf.Write(export.BOM)

	w := export.NewCSVWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteRows(rep.Rows); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(rep.Despacho.Reference, "csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ReportHandler) respondXLSX(c *gin.Context, rep *service.GroupedReport) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rep.Rows, rep.Summary); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(rep.Despacho.Reference, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
