package services

import (
	"context"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
	"github.com/yeremiapane/haccp-app/utils"
)

// ValidationError marks input that must be rejected with a client error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewTemperatureLog is a reading as submitted by staff.
type NewTemperatureLog struct {
	EquipmentName    string
	Temperature      float64
	Unit             string
	StaffName        string
	CorrectiveAction *string
}

func (in *NewTemperatureLog) normalize() error {
	in.EquipmentName = strings.TrimSpace(in.EquipmentName)
	in.StaffName = strings.TrimSpace(in.StaffName)
	in.Unit = strings.TrimSpace(in.Unit)

	if in.EquipmentName == "" {
		return &ValidationError{Field: "equipmentName", Message: "is required"}
	}
	if in.StaffName == "" {
		return &ValidationError{Field: "staffName", Message: "is required"}
	}
	if math.IsNaN(in.Temperature) || math.IsInf(in.Temperature, 0) {
		return &ValidationError{Field: "temperature", Message: "must be a finite number"}
	}
	if in.Unit == "" {
		in.Unit = models.DefaultTemperatureUnit
	}
	if in.CorrectiveAction != nil {
		action := strings.TrimSpace(*in.CorrectiveAction)
		if action == "" {
			in.CorrectiveAction = nil
		} else {
			in.CorrectiveAction = &action
		}
	}
	return nil
}

// TemperatureLogService records readings. The deviation flag and status are
// always computed here from the current CCP catalog.
type TemperatureLogService struct {
	store database.Store
}

func NewTemperatureLogService(store database.Store) *TemperatureLogService {
	return &TemperatureLogService{store: store}
}

func (s *TemperatureLogService) List(ctx context.Context) ([]models.TemperatureLog, error) {
	return s.store.ListTemperatureLogs(ctx)
}

func (s *TemperatureLogService) Submit(ctx context.Context, in NewTemperatureLog) (*models.TemperatureLog, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	ccps, err := s.store.ListCCPs(ctx)
	if err != nil {
		return nil, err
	}
	result := Evaluate(NewCCPCatalog(ccps), in.EquipmentName, in.Temperature)

	entry := &models.TemperatureLog{
		EquipmentName:    in.EquipmentName,
		Temperature:      in.Temperature,
		Unit:             in.Unit,
		StaffName:        in.StaffName,
		IsDeviation:      result.IsDeviation,
		CorrectiveAction: in.CorrectiveAction,
		Status:           result.Status,
	}
	if err := s.store.CreateTemperatureLog(ctx, entry); err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"log_id":      entry.ID,
		"equipment":   entry.EquipmentName,
		"temperature": entry.Temperature,
		"staff":       entry.StaffName,
	}
	switch {
	case result.IsDeviation:
		utils.InfoLogger.WithFields(fields).Warn("temperature deviation recorded")
	case result.CCP == nil:
		utils.InfoLogger.WithFields(fields).Info("temperature logged for equipment without CCP")
	default:
		utils.InfoLogger.WithFields(fields).Debug("temperature logged")
	}
	return entry, nil
}
