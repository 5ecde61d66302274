package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
	"github.com/yeremiapane/haccp-app/utils"
)

type CleaningLogController struct {
	Store database.Store
}

func NewCleaningLogController(store database.Store) *CleaningLogController {
	return &CleaningLogController{Store: store}
}

// GetAllCleaningTasks
func (clc *CleaningLogController) GetAllCleaningTasks(c *gin.Context) {
	tasks, err := clc.Store.ListCleaningTasks(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, tasks)
}

// GetAllCleaningLogs, newest first with the task embedded
func (clc *CleaningLogController) GetAllCleaningLogs(c *gin.Context) {
	logs, err := clc.Store.ListCleaningLogs(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, logs)
}

// CreateCleaningLog
func (clc *CleaningLogController) CreateCleaningLog(c *gin.Context) {
	type reqBody struct {
		TaskID    uint   `json:"taskId" binding:"required"`
		StaffName string `json:"staffName" binding:"required,max=100"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := requireText("staffName", &body.StaffName); err != nil {
		respondServiceError(c, err)
		return
	}

	logEntry := models.CleaningLog{
		TaskID:    body.TaskID,
		StaffName: body.StaffName,
	}
	if err := clc.Store.CreateCleaningLog(c.Request.Context(), &logEntry); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, logEntry)
}
