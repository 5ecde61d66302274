package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

type TemperatureLogController struct {
	Service *services.TemperatureLogService
}

func NewTemperatureLogController(svc *services.TemperatureLogService) *TemperatureLogController {
	return &TemperatureLogController{Service: svc}
}

// GetAllTemperatureLogs, newest first
func (tlc *TemperatureLogController) GetAllTemperatureLogs(c *gin.Context) {
	logs, err := tlc.Service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, logs)
}

// CreateTemperatureLog
func (tlc *TemperatureLogController) CreateTemperatureLog(c *gin.Context) {
	type reqBody struct {
		EquipmentName    string   `json:"equipmentName" binding:"required,max=100"`
		Temperature      *float64 `json:"temperature" binding:"required"`
		Unit             string   `json:"unit" binding:"max=10"`
		StaffName        string   `json:"staffName" binding:"required,max=100"`
		CorrectiveAction *string  `json:"correctiveAction"`
		// Sent by older clients; the server classifies the reading itself.
		IsDeviation *bool  `json:"isDeviation"`
		Status      string `json:"status"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := tlc.Service.Submit(c.Request.Context(), services.NewTemperatureLog{
		EquipmentName:    body.EquipmentName,
		Temperature:      *body.Temperature,
		Unit:             body.Unit,
		StaffName:        body.StaffName,
		CorrectiveAction: body.CorrectiveAction,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if body.IsDeviation != nil && *body.IsDeviation != entry.IsDeviation {
		utils.InfoLogger.WithField("log_id", entry.ID).
			Warn("client deviation flag disagrees with server classification")
	}

	utils.RespondJSON(c, http.StatusCreated, entry)
}
