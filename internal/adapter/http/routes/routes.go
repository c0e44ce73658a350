package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "adspace_ops/docs" // This will be auto-generated
	"adspace_ops/internal/adapter/http/handlers"
	repository2 "adspace_ops/internal/adapter/persistence/repository"
	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/infrastructure/database"
	"adspace_ops/internal/infrastructure/documents"
	"adspace_ops/internal/infrastructure/payments"
	"adspace_ops/internal/infrastructure/storage"
	"adspace_ops/internal/usecase"
	"adspace_ops/internal/usecase/interfaces"

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
	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	ddb := database.ConnectDynamoDB()

	billboardRepo := repository2.NewBillboardDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	estimateRepo := repository2.NewCostEstimateDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	jobOrderRepo := repository2.NewJobOrderDynamoRepository(ddb)
	assignmentRepo := repository2.NewServiceAssignmentDynamoRepository(ddb)
	paymentRepo := repository2.NewBillingPaymentDynamoRepository(ddb)

	billboardUseCase := usecase.NewBillboardUseCase(billboardRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, billboardRepo)
	estimateUseCase := usecase.NewCostEstimateUseCase(estimateRepo, billboardRepo)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, estimateRepo)
	jobOrderUseCase := usecase.NewJobOrderUseCase(jobOrderRepo, quotationRepo)
	assignmentUseCase := usecase.NewServiceAssignmentUseCase(assignmentRepo, jobOrderRepo)

	var renderer interfaces.IDocumentRenderer
	rendererClient, err := documents.NewRendererClient(os.Getenv("RENDERER_URL"))
	if err != nil {
		log.Printf("Document renderer not configured: %v", err)
	} else {
		renderer = rendererClient
	}

	var fileStorage interfaces.IFileStorage
	s3Store, err := storage.NewS3DocumentStore(awsCfg)
	if err != nil {
		log.Printf("Document storage not configured: %v", err)
	} else {
		fileStorage = s3Store
	}

	documentUseCase := usecase.NewDocumentUseCase(
		companyFromEnv(),
		estimateRepo,
		quotationRepo,
		jobOrderRepo,
		assignmentRepo,
		renderer,
		fileStorage,
	)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, quotationRepo, paymentGateway)

	billboardHandler := handlers.NewBillboardHandler(billboardUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	estimateHandler := handlers.NewCostEstimateHandler(estimateUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	jobOrderHandler := handlers.NewJobOrderHandler(jobOrderUseCase)
	assignmentHandler := handlers.NewServiceAssignmentHandler(assignmentUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	billingPaymentHandler := handlers.NewBillingPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInventoryRoutes(v1, billboardHandler, bookingHandler)
	addSalesRoutes(v1, estimateHandler, quotationHandler, documentHandler, billingPaymentHandler)
	addOperationsRoutes(v1, jobOrderHandler, assignmentHandler, documentHandler)
}

func companyFromEnv() entities.CompanyView {
	return entities.CompanyView{
		Name:    getenvDefault("COMPANY_NAME", "AdSpace Outdoor Media"),
		Address: os.Getenv("COMPANY_ADDRESS"),
		Phone:   os.Getenv("COMPANY_PHONE"),
		Email:   os.Getenv("COMPANY_EMAIL"),
		LogoURL: os.Getenv("COMPANY_LOGO_URL"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
