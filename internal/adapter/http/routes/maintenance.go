package routes

import (
	"manutencao_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEquipment   = "/equipment"
	PathTeams       = "/teams"
	PathRequests    = "/requests"
	PathBoard       = "/board"
	PathMetrics     = "/metrics"
	PathCalendar    = "/calendar"
	PathWorkCenters = "/work-centers"
	PathSession     = "/session"
)

func addMaintenanceRoutes(
	rg *gin.RouterGroup,
	equipmentHandler *handlers.EquipmentHandler,
	teamHandler *handlers.TeamHandler,
	requestHandler *handlers.RequestHandler,
	boardHandler *handlers.BoardHandler,
	metricsHandler *handlers.MetricsHandler,
	calendarHandler *handlers.CalendarHandler,
	workCenterHandler *handlers.WorkCenterHandler,
	sessionHandler *handlers.SessionHandler,
) {
	equipment := rg.Group(PathEquipment)
	{
		equipment.GET("", equipmentHandler.List)
		equipment.POST("", equipmentHandler.Create)
		equipment.GET("/:id", equipmentHandler.Get)
		equipment.PUT("/:id", equipmentHandler.Update)
		equipment.DELETE("/:id", equipmentHandler.Delete)
		equipment.PATCH("/:id/team", equipmentHandler.SelectTeam)
		equipment.GET("/:id/requests", equipmentHandler.Requests)
		equipment.GET("/:id/open-requests", equipmentHandler.OpenRequests)
	}

	teams := rg.Group(PathTeams)
	{
		teams.GET("", teamHandler.List)
		teams.POST("", teamHandler.Create)
		teams.GET("/by-name/:name", teamHandler.GetByName)
		teams.PUT("/:id", teamHandler.Update)
		teams.DELETE("/:id", teamHandler.Delete)
	}

	requests := rg.Group(PathRequests)
	{
		requests.GET("", requestHandler.List)
		requests.POST("", requestHandler.Create)
		requests.GET("/:id", requestHandler.Get)
		requests.PUT("/:id", requestHandler.Update)
		requests.DELETE("/:id", requestHandler.Delete)
		requests.PATCH("/:id/stage", requestHandler.MoveStage)
		requests.PATCH("/:id/equipment", requestHandler.SelectEquipment)
		requests.PATCH("/:id/team", requestHandler.SelectTeam)
	}

	board := rg.Group(PathBoard)
	{
		board.GET("", boardHandler.Columns)
		board.POST("/move", boardHandler.Move)
	}

	metrics := rg.Group(PathMetrics)
	{
		metrics.GET("/dashboard", metricsHandler.Dashboard)
		metrics.GET("/reporting", metricsHandler.Reporting)
	}

	rg.GET(PathCalendar+"/events", calendarHandler.Events)
	rg.GET(PathWorkCenters, workCenterHandler.List)

	session := rg.Group(PathSession)
	{
		session.GET("", sessionHandler.Get)
		session.POST("/refresh", sessionHandler.Refresh)
	}
}
