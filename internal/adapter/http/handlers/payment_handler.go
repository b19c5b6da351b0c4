package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agency_crm/internal/adapter/http/dto/request"
	response "agency_crm/internal/adapter/http/dto/response"
	"agency_crm/internal/usecase"
	"agency_crm/pkg"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments usecase.IPaymentScheduleUseCase
}

func NewPaymentHandler(payments usecase.IPaymentScheduleUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// ListPayments handles GET /payments/:contract_id.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	contractID := c.Param("contract_id")

	payments, err := h.payments.ListByContractID(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[payments][handler] list failed contract_id=%s err=%v", contractID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// CollectPayment handles POST /payments/:payment_id/collect.
func (h *PaymentHandler) CollectPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var payload request.PaymentCollectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.payments.CollectPayment(c.Request.Context(), paymentID, payload.Payload)
	if err != nil {
		log.Printf("[payments][handler] collect failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidCollectPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment provider credentials rejected", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
