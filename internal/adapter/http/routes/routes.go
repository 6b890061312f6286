package routes

import (
	"os"
	"strconv"

	_ "shop_manager/docs" // swagger docs, generated by swag
	"shop_manager/internal/adapter/http/handlers"
	"shop_manager/internal/adapter/persistence/repository"
	"shop_manager/internal/infrastructure/cache"
	"shop_manager/internal/infrastructure/database"
	"shop_manager/internal/infrastructure/payments"
	"shop_manager/internal/infrastructure/storage"
	"shop_manager/internal/logger"
	"shop_manager/internal/usecase"
	"shop_manager/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server.
func Run() {
	log := logger.WithComponent("routes")

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	log := logger.WithComponent("routes")

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	documentRepo := repository.NewDocumentGormRepository(db)
	inventoryRepo := repository.NewInventoryGormRepository(db)
	taskRepo := repository.NewTaskGormRepository(db)
	paymentRepo := repository.NewPaymentGormRepository(db)
	txManager := repository.NewTxManager(db)

	photoStore := storage.NewLocalPhotoStore()
	listingCache := cache.NewListingCache()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	documentUseCase := usecase.NewDocumentUseCase(documentRepo, inventoryRepo, taskRepo, photoStore, txManager, listingCache)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, txManager)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, documentRepo, paymentGateway)

	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, documentHandler, inventoryHandler, paymentHandler)
}

func setMiddlewares() {
	log := logger.WithComponent("http")

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
