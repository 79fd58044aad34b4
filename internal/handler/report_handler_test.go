package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/handler"
	"github.com/goldbach8/DespachoComex/internal/report"
	"github.com/goldbach8/DespachoComex/internal/service"
	"github.com/goldbach8/DespachoComex/mocks"
)

func reportRouter(svc *mocks.MockReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReportHandler(svc)
	r.GET("/despachos/:id/report", h.Grouped)
	return r
}

func sampleReport(id uuid.UUID) *service.GroupedReport {
	return &service.GroupedReport{
		Despacho: &domain.Despacho{ID: id, Reference: "DESP 24/001"},
		Rows: []report.GroupedRow{
			{Despacho: "24001IC04123456K", Posicion: "8413.91.90.790R",
				Currency: "USD", Provider: "CATERPILLAR", TotalFob: 100, Class: domain.ClassBK},
		},
		Summary: []report.ProviderRow{
			{Provider: "CATERPILLAR", TotalFob: 100, BKFob: 100, BKPercent: 100},
		},
	}
}

func TestReportHandler_JSONDefault(t *testing.T) {
	svc := new(mocks.MockReportService)
	id := uuid.New()
	svc.On("Grouped", mock.Anything, id, mock.Anything).Return(sampleReport(id), nil)

	r := reportRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/despachos/"+id.String()+"/report", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "CATERPILLAR")
}

func TestReportHandler_CSVAttachment(t *testing.T) {
	svc := new(mocks.MockReportService)
	id := uuid.New()
	svc.On("Grouped", mock.Anything, id, mock.Anything).Return(sampleReport(id), nil)

	r := reportRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/despachos/"+id.String()+"/report?format=csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "DESP_24_001")
	// UTF-8 BOM leads the body for Excel.
	body := w.Body.Bytes()
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3])
	assert.Contains(t, string(body), "Despacho Nro")
}

func TestReportHandler_XLSXAttachment(t *testing.T) {
	svc := new(mocks.MockReportService)
	id := uuid.New()
	svc.On("Grouped", mock.Anything, id, mock.Anything).Return(sampleReport(id), nil)

	r := reportRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/despachos/"+id.String()+"/report?format=xlsx", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Equal(t, []byte{'P', 'K'}, w.Body.Bytes()[:2])
}

func TestReportHandler_InvalidFormat(t *testing.T) {
	svc := new(mocks.MockReportService)
	r := reportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/despachos/"+uuid.NewString()+"/report?format=pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REPORT_FORMAT")
	svc.AssertNotCalled(t, "Grouped")
}

func TestReportHandler_NotFound(t *testing.T) {
	svc := new(mocks.MockReportService)
	id := uuid.New()
	svc.On("Grouped", mock.Anything, id, mock.Anything).Return(nil, domain.ErrDespachoNotFound)

	r := reportRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/despachos/"+id.String()+"/report", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
