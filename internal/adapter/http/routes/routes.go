package routes

import (
	"log"
	"os"
	"strconv"

	_ "foodcoop_orders/docs" // This will be auto-generated
	"foodcoop_orders/internal/adapter/cache"
	"foodcoop_orders/internal/adapter/events"
	"foodcoop_orders/internal/adapter/http/handlers"
	repository2 "foodcoop_orders/internal/adapter/persistence/repository"
	"foodcoop_orders/internal/infrastructure/database"
	"foodcoop_orders/internal/usecase"
	"foodcoop_orders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	store := repository2.NewDocumentStoreDynamoRepository(ddb)
	cycleRepo := repository2.NewSalesCycleDocumentRepository(store)
	ledgerRepo := repository2.NewLedgerDocumentRepository(store)
	orderRepo := repository2.NewOrderDocumentRepository(store)

	var cycleCache interfaces.ICycleCache = cache.NoopCycleCache{}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cycleCache = cache.NewRedisCycleCache(addr, os.Getenv("REDIS_PASSWORD"), 0)
		log.Printf("[routes] cycle snapshot cache enabled addr=%s", addr)
	}

	var exporter interfaces.IOrderExporter
	if brokers := splitCSV(os.Getenv("KAFKA_BROKERS")); len(brokers) > 0 {
		exporter = events.NewKafkaOrderExporter(brokers, os.Getenv("KAFKA_ORDERS_TOPIC"))
		log.Printf("[routes] order export feed enabled brokers=%d", len(brokers))
	} else {
		log.Printf("[routes] order export feed not configured; confirmations stay local")
	}

	volumeUseCase := usecase.NewVolumeUseCase(cycleRepo, ledgerRepo)
	cycleUseCase := usecase.NewCycleUseCase(cycleRepo, volumeUseCase, cycleCache)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cycleRepo, volumeUseCase, exporter)

	cycleHandler := handlers.NewCycleHandler(cycleUseCase, volumeUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCoopRoutes(v1, cycleHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
