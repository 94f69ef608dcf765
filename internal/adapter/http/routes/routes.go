package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "quotecalc/docs" // This will be auto-generated
	"quotecalc/internal/adapter/http/handlers"
	"quotecalc/internal/adapter/http/middleware"
	"quotecalc/internal/adapter/persistence/repository"
	"quotecalc/internal/infrastructure/database"
	"quotecalc/internal/infrastructure/documents"
	"quotecalc/internal/infrastructure/payments"
	"quotecalc/internal/usecase"
	"quotecalc/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB(context.Background())

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	historyRepo := repository.NewQuoteHistoryDynamoRepository(ddb)
	profileRepo := repository.NewProfileDynamoRepository(ddb)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb)

	// A missing billing gateway degrades billing endpoints to errors
	// instead of failing startup; quoting keeps working.
	var billingGateway interfaces.IBillingGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		billingGateway = mpGateway
	}

	renderer := documents.NewQuotePDFRenderer()
	baseURL := os.Getenv("PUBLIC_BASE_URL")

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, historyRepo, subscriptionRepo, profileRepo, renderer, baseURL)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, profileRepo, billingGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	billingHandler := handlers.NewBillingHandler(subscriptionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Webhook and preview stay public; everything else requires a token.
	v1.POST("/billing/webhook", billingHandler.HandleWebhook)
	v1.POST("/quotes/preview", quoteHandler.PreviewQuote)

	authed := v1.Group("", middleware.RequireAuth())
	addQuoteRoutes(authed, quoteHandler)
	addProfileRoutes(authed, profileHandler)
	addBillingRoutes(authed, billingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}
