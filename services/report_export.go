package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
	"github.com/yeremiapane/haccp-app/utils"
)

const reportTimeLayout = "2006-01-02 15:04"

// InspectionReport is a snapshot of the temperature records handed to a food
// inspector.
type InspectionReport struct {
	Title       string
	GeneratedAt time.Time
	Location    *time.Location
	CCPs        []models.CCP
	Logs        []models.TemperatureLog
	Stats       Stats
}

type ReportService struct {
	store database.Store
	title string
	loc   *time.Location
	now   func() time.Time
}

func NewReportService(store database.Store, title string, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{store: store, title: title, loc: loc, now: time.Now}
}

func (s *ReportService) Build(ctx context.Context) (InspectionReport, error) {
	ccps, err := s.store.ListCCPs(ctx)
	if err != nil {
		return InspectionReport{}, err
	}
	logs, err := s.store.ListTemperatureLogs(ctx)
	if err != nil {
		return InspectionReport{}, err
	}
	return InspectionReport{
		Title:       s.title,
		GeneratedAt: s.now(),
		Location:    s.loc,
		CCPs:        ccps,
		Logs:        logs,
		Stats:       Aggregate(logs, config.ScopeAll),
	}, nil
}

var csvHeader = []string{
	"id", "created_at", "equipment", "temperature", "unit", "staff", "is_deviation", "status", "corrective_action",
}

// WriteCSV writes one row per temperature log, newest first.
func (r InspectionReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, log := range r.Logs {
		action := ""
		if log.CorrectiveAction != nil {
			action = *log.CorrectiveAction
		}
		row := []string{
			strconv.FormatUint(uint64(log.ID), 10),
			log.CreatedAt.In(r.location()).Format(time.RFC3339),
			log.EquipmentName,
			strconv.FormatFloat(log.Temperature, 'f', -1, 64),
			log.Unit,
			log.StaffName,
			strconv.FormatBool(log.IsDeviation),
			log.Status,
			action,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePDF renders the report as an A4 document: summary, CCP limits and the
// reading table with deviations highlighted.
func (r InspectionReport) WritePDF(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(r.Title, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(r.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Generated "+r.GeneratedAt.In(r.location()).Format(reportTimeLayout), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total checks: %d   Deviations: %d   Compliance: %d%%",
		r.Stats.TotalLogs, r.Stats.Deviations, r.Stats.ComplianceScore), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Critical control points", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range []struct {
		label string
		width float64
	}{{"Name", 60}, {"Min", 25}, {"Max", 25}, {"Description", 80}} {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, ccp := range r.CCPs {
		pdf.CellFormat(60, 6, tr(ccp.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, tr(utils.FormatLimit(ccp.MinLimit, models.DefaultTemperatureUnit)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, tr(utils.FormatLimit(ccp.MaxLimit, models.DefaultTemperatureUnit)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(80, 6, tr(ccp.Description), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Temperature log", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	for _, h := range []struct {
		label string
		width float64
	}{{"Time", 32}, {"Equipment", 58}, {"Temp", 22}, {"Staff", 40}, {"Status", 38}} {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, log := range r.Logs {
		if log.IsDeviation {
			pdf.SetTextColor(200, 0, 0)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.CellFormat(32, 6, log.CreatedAt.In(r.location()).Format(reportTimeLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(58, 6, tr(log.EquipmentName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, tr(utils.FormatTemperature(log.Temperature, log.Unit)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(log.StaffName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 6, log.Status, "1", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	return pdf.Output(w)
}

func (r InspectionReport) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}
