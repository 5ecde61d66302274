package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// GetStats returns the dashboard counters; ?scope=all|today overrides the
// configured default.
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.Stats.Compute(c.Request.Context(), c.Query("scope"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, stats)
}
