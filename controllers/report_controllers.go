package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// ExportTemperatureCSV
func (rc *ReportController) ExportTemperatureCSV(c *gin.Context) {
	report, err := rc.Reports.Build(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	attachment(c, report, "csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportTemperaturePDF
func (rc *ReportController) ExportTemperaturePDF(c *gin.Context) {
	report, err := rc.Reports.Build(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// render fully before writing so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := report.WritePDF(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	attachment(c, report, "pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func attachment(c *gin.Context, report services.InspectionReport, ext string) {
	name := fmt.Sprintf("haccp-temperature-%s.%s", report.GeneratedAt.Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}
