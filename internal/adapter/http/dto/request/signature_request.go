package request

import (
	"strings"

	"agency_crm/internal/domain/entities"
)

// SignatureSendRequest is the payload of POST /signatures.

type SignatureSendRequest struct {
	ContractID  string          `json:"contractId" binding:"required"`
	Platform    string          `json:"platform"`
	Signers     []SignerRequest `json:"signers"`
	ForceResend bool            `json:"forceResend"`
}

func (r SignatureSendRequest) ResolveContractID() string {
	return strings.TrimSpace(r.ContractID)
}

func (r SignatureSendRequest) ResolveSigners() []entities.Signer {
	return toSigners(r.Signers)
}

// SignatureWebhookRequest is the provider callback payload. The provider
// posts document.signed / document.declined / document.expired events; the
// external id registered at send time comes back as contractId.

type SignatureWebhookRequest struct {
	Event      string `json:"event"`
	DocumentID string `json:"documentId"`
	ContractID string `json:"contractId"`
	Status     string `json:"status"`
}
