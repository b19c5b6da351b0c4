package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agency_crm/internal/adapter/http/dto/request"
	"agency_crm/internal/usecase"
	"agency_crm/pkg"

	"github.com/gin-gonic/gin"
)

type SignatureHandler struct {
	signatures usecase.ISignatureUseCase
}

func NewSignatureHandler(signatures usecase.ISignatureUseCase) *SignatureHandler {
	return &SignatureHandler{signatures: signatures}
}

// SendForSignature handles POST /signatures.
//
// Gateway failures come back as a 200 with success=false so the dashboard
// can offer a resend; only validation and persistence failures map to
// error statuses.
func (h *SignatureHandler) SendForSignature(c *gin.Context) {
	var payload request.SignatureSendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.signatures.SendContract(c.Request.Context(), usecase.SendContractInput{
		ContractID:  payload.ResolveContractID(),
		Platform:    payload.Platform,
		Signers:     payload.ResolveSigners(),
		ForceResend: payload.ForceResend,
	})
	if err != nil {
		log.Printf("[signature][handler] send failed contract_id=%s err=%v", payload.ResolveContractID(), err)
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSignatureStatus handles GET /signatures?contractId=...
func (h *SignatureHandler) GetSignatureStatus(c *gin.Context) {
	contractID := c.Query("contractId")

	view, err := h.signatures.GetStatus(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[signature][handler] status failed contract_id=%s err=%v", contractID, err)
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleWebhook handles POST /signatures/webhook, the provider callback.
func (h *SignatureHandler) HandleWebhook(c *gin.Context) {
	var payload request.SignatureWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.signatures.HandleWebhookEvent(c.Request.Context(), usecase.WebhookEvent{
		Event:      payload.Event,
		DocumentID: payload.DocumentID,
		ContractID: payload.ContractID,
		Status:     payload.Status,
	})
	if err != nil {
		log.Printf("[signature][handler] webhook failed contract_id=%s event=%s err=%v", payload.ContractID, payload.Event, err)
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

func mapSignatureError(err error) *pkg.AppError {
	var signerErr *usecase.SignerValidationError
	switch {
	case errors.As(err, &signerErr):
		return pkg.NewDomainError("INVALID_SIGNERS", signerErr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownWebhookEvent):
		return pkg.NewDomainErrorSimple("UNKNOWN_WEBHOOK_EVENT", "Unknown webhook event", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSignatureGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("SIGNATURE_GATEWAY_NOT_CONFIGURED", "Signature gateway not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
