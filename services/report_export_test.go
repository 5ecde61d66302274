package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReport(t *testing.T) InspectionReport {
	t.Helper()
	store := seededStore()
	store.now = func() time.Time { return time.Date(2026, 10, 18, 6, 15, 0, 0, time.UTC) }
	logs := NewTemperatureLogService(store)
	ctx := context.Background()

	action := "Moved stock to backup fridge"
	_, err := logs.Submit(ctx, NewTemperatureLog{EquipmentName: "Kylskåp", Temperature: 4, StaffName: "Åsa"})
	require.NoError(t, err)
	_, err = logs.Submit(ctx, NewTemperatureLog{EquipmentName: "Kylskåp", Temperature: 11.5, StaffName: "Åsa", CorrectiveAction: &action})
	require.NoError(t, err)

	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)
	svc := NewReportService(store, "HACCP egenkontroll", stockholm)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC) }

	report, err := svc.Build(ctx)
	require.NoError(t, err)
	return report
}

func TestInspectionReportCSV(t *testing.T) {
	report := buildReport(t)
	assert.Equal(t, int64(2), report.Stats.TotalLogs)
	assert.Equal(t, 50, report.Stats.ComplianceScore)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])

	newest := rows[1]
	assert.Equal(t, "2", newest[0])
	assert.Equal(t, "2026-10-18T08:15:00+02:00", newest[1])
	assert.Equal(t, "Kylskåp", newest[2])
	assert.Equal(t, "11.5", newest[3])
	assert.Equal(t, "true", newest[6])
	assert.Equal(t, "Deviation", newest[7])
	assert.Equal(t, "Moved stock to backup fridge", newest[8])

	assert.Equal(t, "false", rows[2][6])
	assert.Equal(t, "", rows[2][8])
}

func TestInspectionReportPDF(t *testing.T) {
	report := buildReport(t)

	var buf bytes.Buffer
	require.NoError(t, report.WritePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestReportServicePropagatesErrors(t *testing.T) {
	store := seededStore()
	store.listErr = assert.AnError
	_, err := NewReportService(store, "x", nil).Build(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
