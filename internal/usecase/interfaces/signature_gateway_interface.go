package interfaces

import (
	"context"

	"agency_crm/internal/domain/entities"
)

// SignatureDocument is the payload handed to the e-signature provider.

type SignatureDocument struct {
	Title               string
	HTMLContent         string
	ExternalReferenceID string
	WebhookURL          string
	Signers             []entities.Signer
}

// SignatureSendResult is what a successful provider send returns.

type SignatureSendResult struct {
	DocumentID string
	SignURL    string
}

// ISignatureGateway abstracts external e-signature providers.
//
// GetStatus returns the provider's raw status vocabulary; mapping to the
// internal signature statuses is the lifecycle manager's job.

type ISignatureGateway interface {
	Send(ctx context.Context, doc SignatureDocument) (SignatureSendResult, error)
	GetStatus(ctx context.Context, documentID string) (string, error)
}
