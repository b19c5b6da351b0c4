package routes

import (
	"log"
	"os"
	"strconv"

	_ "agency_crm/docs" // This will be auto-generated
	"agency_crm/internal/adapter/http/handlers"
	repository2 "agency_crm/internal/adapter/persistence/repository"
	"agency_crm/internal/infrastructure/database"
	"agency_crm/internal/infrastructure/payments"
	"agency_crm/internal/infrastructure/signatures"
	"agency_crm/internal/usecase"
	"agency_crm/internal/usecase/interfaces"

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

	contractRepo := repository2.NewContractDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	partRepo := repository2.NewContractPartDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	milestoneRepo := repository2.NewMilestoneDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var signatureGateway interfaces.ISignatureGateway
	esGateway, err := signatures.NewESignaturesGateway(os.Getenv("ESIGN_API_TOKEN"))
	if err != nil {
		log.Printf("eSignatures gateway not configured: %v", err)
	} else {
		signatureGateway = esGateway
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	contractUseCase := usecase.NewContractUseCase(contractRepo, proposalRepo, partRepo, productRepo, milestoneRepo, paymentRepo)
	signatureUseCase := usecase.NewSignatureUseCase(contractRepo, signatureGateway)
	paymentUseCase := usecase.NewPaymentScheduleUseCase(paymentRepo, contractRepo, paymentGateway)

	contractHandler := handlers.NewContractHandler(contractUseCase, signatureUseCase, paymentUseCase)
	signatureHandler := handlers.NewSignatureHandler(signatureUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractRoutes(v1, contractHandler, signatureHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
