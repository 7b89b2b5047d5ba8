package router

import (
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/config"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/handler"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", handler.GetMe)

	dailyHandler := handler.NewDailyHandler(db)
	protected.GET("/daily", dailyHandler.GetDay)
	protected.POST("/daily", dailyHandler.SaveDay)

	dashboardHandler := handler.NewDashboardHandler(db, cfg.App.HistoryWindowDays)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	taskHandler := handler.NewTaskHandler(db)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.PATCH("/tasks/:id", taskHandler.UpdateTask)
	protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

	habitHandler := handler.NewHabitHandler(db, cfg.App.HistoryWindowDays)
	protected.GET("/habits", habitHandler.ListHabits)
	protected.DELETE("/habits/:id", habitHandler.ArchiveHabit)
	protected.POST("/habits/:id/log", habitHandler.LogHabit)
	protected.GET("/habits/:id/streak", habitHandler.HabitStreak)

	historyHandler := handler.NewHistoryHandler(db)
	protected.GET("/history", historyHandler.GetHistory)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/history/export/csv", exportHandler.ExportCSV)
	protected.GET("/history/export/xlsx", exportHandler.ExportXLSX)

	statsHandler := handler.NewStatsHandler(db)
	protected.GET("/stats", statsHandler.GetStats)

	sectionHandler := handler.NewSectionHandler(db)
	protected.POST("/sections", sectionHandler.CreateSection)
	protected.DELETE("/sections/:id", sectionHandler.DeleteSection)

	ruleHandler := handler.NewRuleHandler(db)
	protected.POST("/rules", ruleHandler.CreateRule)
	protected.DELETE("/rules/:id", ruleHandler.DeleteRule)

	financeHandler := handler.NewFinanceHandler(db)
	protected.GET("/finances", financeHandler.ListRecords)
	protected.POST("/finances", financeHandler.CreateRecord)
	protected.PATCH("/finances/:id", financeHandler.UpdateRecord)
	protected.DELETE("/finances/:id", financeHandler.DeleteRecord)

	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	return r
}
