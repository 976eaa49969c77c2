package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/nimo-qms/internal/qms/export"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
	"github.com/bitfantasy/nimo-qms/internal/qms/service"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GetSnapshot GET /report/snapshot?period=last12months&refresh=true
func (h *ReportHandler) GetSnapshot(c *gin.Context) {
	period := report.ParsePeriod(c.Query("period"))
	refresh := c.Query("refresh") == "true" || c.Query("refresh") == "1"

	snap, err := h.svc.GetSnapshot(c.Request.Context(), period, refresh)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			Error(c, 49900, "request cancelled")
			return
		}
		InternalError(c, "compute snapshot: "+err.Error())
		return
	}

	Success(c, snap)
}

// ExportSnapshot GET /report/export?period=last12months
func (h *ReportHandler) ExportSnapshot(c *gin.Context) {
	period := report.ParsePeriod(c.Query("period"))

	snap, err := h.svc.GetSnapshot(c.Request.Context(), period, false)
	if err != nil {
		InternalError(c, "compute snapshot: "+err.Error())
		return
	}

	f, err := export.SnapshotWorkbook(snap)
	if err != nil {
		InternalError(c, "build workbook: "+err.Error())
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("quality_report_%s_%s.xlsx", period, time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
