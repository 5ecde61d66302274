package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

// respondServiceError maps domain errors to client errors and everything
// else to 500.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, database.ErrCleaningTaskNotFound),
		errors.Is(err, services.ErrUnknownScope):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// requireText trims value and rejects it when nothing is left.
func requireText(field string, value *string) error {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		return &services.ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
