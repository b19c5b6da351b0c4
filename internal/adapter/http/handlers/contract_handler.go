package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agency_crm/internal/adapter/http/dto/request"
	response "agency_crm/internal/adapter/http/dto/response"
	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase"
	"agency_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// ContractHandler handles the action-dispatch contract endpoint used by the
// dashboard: one POST carrying an action discriminator instead of separate
// routes per operation.

type ContractHandler struct {
	contracts  usecase.IContractUseCase
	signatures usecase.ISignatureUseCase
	payments   usecase.IPaymentScheduleUseCase
}

func NewContractHandler(contracts usecase.IContractUseCase, signatures usecase.ISignatureUseCase, payments usecase.IPaymentScheduleUseCase) *ContractHandler {
	return &ContractHandler{contracts: contracts, signatures: signatures, payments: payments}
}

// HandleContractAction dispatches POST /contracts.
func (h *ContractHandler) HandleContractAction(c *gin.Context) {
	var payload request.ContractActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] action start action=%s proposal_id=%s contract_id=%s", payload.Action, payload.ResolveProposalID(), payload.ResolveContractID())

	switch payload.Action {
	case request.ActionGenerateContract:
		h.generateContract(c, payload)
	case request.ActionGeneratePayments:
		h.generatePayments(c, payload)
	case request.ActionSendForSignature:
		h.sendForSignature(c, payload)
	default:
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown action: "+payload.Action, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func (h *ContractHandler) generateContract(c *gin.Context, payload request.ContractActionRequest) {
	proposalID := payload.ResolveProposalID()
	if proposalID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_PROPOSAL_ID", "proposalId is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contract, err := h.contracts.GenerateFromProposal(c.Request.Context(), actorFromRequest(c), usecase.GenerateContractInput{
		ProposalID:       proposalID,
		BillingPeriod:    payload.ResolveBillingPeriod(),
		SelectedProducts: payload.SelectedProducts,
	})
	if err != nil {
		log.Printf("[contract][handler] generate failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.GeneratePayments {
		// Schedule generation is fire-and-forget: its failure never fails
		// the contract generation that preceded it.
		if _, err := h.payments.GenerateFromContract(c.Request.Context(), contract.ID); err != nil {
			log.Printf("[contract][handler] payment generation failed contract_id=%s err=%v", contract.ID, err)
		}
	}

	log.Printf("[contract][handler] generate success proposal_id=%s contract_id=%s", proposalID, contract.ID)
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) generatePayments(c *gin.Context, payload request.ContractActionRequest) {
	contractID := payload.ResolveContractID()
	if contractID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_CONTRACT_ID", "contractId is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payments, err := h.payments.GenerateFromContract(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[contract][handler] generate-payments failed contract_id=%s err=%v", contractID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *ContractHandler) sendForSignature(c *gin.Context, payload request.ContractActionRequest) {
	contractID := payload.ResolveContractID()
	if contractID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_CONTRACT_ID", "contractId is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.signatures.SendContract(c.Request.Context(), usecase.SendContractInput{
		ContractID:  contractID,
		Platform:    payload.Platform,
		Signers:     payload.ResolveSigners(),
		ForceResend: payload.ForceResend,
	})
	if err != nil {
		log.Printf("[contract][handler] send-for-signature failed contract_id=%s err=%v", contractID, err)
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetContract returns one contract by path id.
func (h *ContractHandler) GetContract(c *gin.Context) {
	contractID := c.Param("contract_id")

	contract, err := h.contracts.GetByID(c.Request.Context(), contractID)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetContractByProposal returns the contract generated from a proposal,
// looked up by the proposalId query param.
func (h *ContractHandler) GetContractByProposal(c *gin.Context) {
	proposalID := c.Query("proposalId")

	contract, err := h.contracts.GetByProposalID(c.Request.Context(), proposalID)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// actorFromRequest builds the explicit actor context from the gateway
// headers; an empty actor fails inside the usecase with 401.
func actorFromRequest(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:    c.GetHeader("X-Actor-ID"),
		Email: c.GetHeader("X-Actor-Email"),
	}
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorUnresolved):
		return pkg.NewDomainErrorSimple("ACTOR_UNRESOLVED", "Acting user could not be resolved", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
