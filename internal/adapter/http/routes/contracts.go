package routes

import (
	"agency_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts  = "/contracts"
	PathSignatures = "/signatures"
	PathPayments   = "/payments"
)

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, signatureHandler *handlers.SignatureHandler, paymentHandler *handlers.PaymentHandler) {
	contracts := rg.Group(PathContracts)
	{
		// Action-dispatch endpoint used by the dashboard.
		contracts.POST("", contractHandler.HandleContractAction)
		contracts.GET("", contractHandler.GetContractByProposal)
		contracts.GET("/:contract_id", contractHandler.GetContract)
	}

	signatures := rg.Group(PathSignatures)
	{
		signatures.POST("", signatureHandler.SendForSignature)
		signatures.GET("", signatureHandler.GetSignatureStatus)
		signatures.POST("/webhook", signatureHandler.HandleWebhook)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:contract_id", paymentHandler.ListPayments)
		payments.POST("/:payment_id/collect", paymentHandler.CollectPayment)
	}
}
