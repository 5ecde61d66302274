package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/controllers"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/middlewares"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

const reportTitle = "HACCP temperature records"

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Store    database.Store
	Stats    *services.StatsService
	Logs     *services.TemperatureLogService
	Reports  *services.ReportService
	Server   config.ServerConfig
	Location *time.Location
}

// NewDependencies wires the services over store using cfg.
func NewDependencies(store database.Store, cfg *config.Config) (Dependencies, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Dependencies{}, err
	}
	return Dependencies{
		Store:    store,
		Stats:    services.NewStatsService(store, cfg.Stats.Scope, loc),
		Logs:     services.NewTemperatureLogService(store),
		Reports:  services.NewReportService(store, reportTitle, loc),
		Server:   cfg.Server,
		Location: loc,
	}, nil
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.Server.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if deps.Server.RateLimitRPS > 0 && deps.Server.RateLimitBurst > 0 {
		r.Use(middlewares.NewRateLimiter(deps.Server.RateLimitRPS, deps.Server.RateLimitBurst).RateLimit())
	}

	// Inisialisasi controller
	healthCtrl := controllers.NewHealthController(deps.Store)
	ccpCtrl := controllers.NewCCPController(deps.Store)
	tempLogCtrl := controllers.NewTemperatureLogController(deps.Logs)
	goodsCtrl := controllers.NewGoodsReceiptController(deps.Store)
	cleaningCtrl := controllers.NewCleaningLogController(deps.Store)
	statsCtrl := controllers.NewStatsController(deps.Stats)
	reportCtrl := controllers.NewReportController(deps.Reports)

	r.GET("/ping", healthCtrl.Ping)
	r.GET("/healthz", healthCtrl.Healthz)

	api := r.Group("/api")
	{
		api.GET("/ccps", ccpCtrl.GetAllCCPs)

		// TEMPERATURE LOGS
		api.GET("/logs", tempLogCtrl.GetAllTemperatureLogs)
		api.POST("/logs", tempLogCtrl.CreateTemperatureLog)

		// GOODS RECEIPTS
		api.GET("/goods", goodsCtrl.GetAllGoodsReceipts)
		api.POST("/goods", goodsCtrl.CreateGoodsReceipt)

		// CLEANING
		api.GET("/cleaning/tasks", cleaningCtrl.GetAllCleaningTasks)
		api.GET("/cleaning/logs", cleaningCtrl.GetAllCleaningLogs)
		api.POST("/cleaning/logs", cleaningCtrl.CreateCleaningLog)

		api.GET("/stats", statsCtrl.GetStats)

		// inspection exports
		api.GET("/reports/temperature.csv", reportCtrl.ExportTemperatureCSV)
		api.GET("/reports/temperature.pdf", reportCtrl.ExportTemperaturePDF)
	}

	serveFrontend(r, deps.Server.FrontendDir)

	return r
}

// serveFrontend mounts the built dashboard client when a directory is
// configured. Unknown non-API paths fall back to index.html.
func serveFrontend(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		utils.ErrorLogger.WithField("dir", dir).Warn("FRONTEND_DIR not found, dashboard will not be served")
		return
	}

	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.Static("/assets", filepath.Join(dir, "assets"))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !isAPIPath(c.Request.URL.Path) {
			c.File(filepath.Join(dir, "index.html"))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"status": false, "error": "not found"})
	})
	utils.InfoLogger.WithField("dir", dir).Info("serving dashboard client")
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
