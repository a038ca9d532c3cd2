// internal/handlers/report_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary is a placeholder endpoint the mobile client polls; the real
// aggregation ships with the analytics work.
func (h *ReportHandler) Summary(c *gin.Context) {
	utils.OKResponse(c, gin.H{
		"summary": "Report summary endpoint. Implement logic as needed.",
	})
}

func (h *ReportHandler) ListExports(c *gin.Context) {
	exports, err := h.reports.ListExports()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.ReportExports(exports))
}

func (h *ReportHandler) GetExport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	export, err := h.reports.GetExport(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.ReportExport(export))
}

func (h *ReportHandler) CreateExport(c *gin.Context) {
	var req services.CreateReportExportRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	export, err := h.reports.CreateExport(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.ReportExport(export))
}

func (h *ReportHandler) DeleteExport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.reports.DeleteExport(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
