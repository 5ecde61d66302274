package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/utils"
)

type CCPController struct {
	Store database.Store
}

func NewCCPController(store database.Store) *CCPController {
	return &CCPController{Store: store}
}

// GetAllCCPs lists the control point catalog used by the dashboard's
// equipment picker.
func (cc *CCPController) GetAllCCPs(c *gin.Context) {
	ccps, err := cc.Store.ListCCPs(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, ccps)
}
