package routes

import (
	"log"
	_ "manutencao_xpto/docs" // This will be auto-generated
	"manutencao_xpto/internal/adapter/http/handlers"
	repository2 "manutencao_xpto/internal/adapter/persistence/repository"
	"manutencao_xpto/internal/infrastructure/database"
	"manutencao_xpto/internal/usecase"
	"manutencao_xpto/pkg/logger"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	appLogger := logger.NewLogger()
	ddb := database.ConnectDynamoDB()

	equipmentRepo := repository2.NewEquipmentDynamoRepository(ddb)
	teamRepo := repository2.NewTeamDynamoRepository(ddb)
	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	workCenterRepo := repository2.NewWorkCenterDynamoRepository(ddb)

	store := usecase.NewMaintenanceStore(equipmentRepo, teamRepo, requestRepo, workCenterRepo, appLogger)
	lifecycle := usecase.NewLifecycleUseCase(store)
	metrics := usecase.NewMetricsUseCase(store)
	board := usecase.NewBoardUseCase(store, lifecycle)

	equipmentHandler := handlers.NewEquipmentHandler(store, lifecycle)
	teamHandler := handlers.NewTeamHandler(store)
	requestHandler := handlers.NewRequestHandler(store, lifecycle)
	boardHandler := handlers.NewBoardHandler(board)
	metricsHandler := handlers.NewMetricsHandler(metrics)
	calendarHandler := handlers.NewCalendarHandler(store)
	workCenterHandler := handlers.NewWorkCenterHandler(store)
	sessionHandler := handlers.NewSessionHandler(store)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(sessionMiddleware(store, appLogger))
	addPingRoutes(v1)
	addMaintenanceRoutes(v1, equipmentHandler, teamHandler, requestHandler, boardHandler, metricsHandler, calendarHandler, workCenterHandler, sessionHandler)
}

// sessionMiddleware binds the store to the identity of the caller. The
// X-User-Id header plays the role of the auth session: present means signed
// in, absent means signed out.
func sessionMiddleware(store usecase.IMaintenanceStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if err := store.SetIdentity(c.Request.Context(), userID); err != nil {
			logger.Error("session load failed", zap.String("user_id", userID), zap.Error(err))
		}
		c.Next()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
