package interfaces

import (
	"context"
	"time"

	"agency_crm/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// Content is written exactly once per generation, immediately after
// compilation. Signature fields have dedicated writers so the lifecycle
// manager never touches the rest of the record.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.Contract, error)
	UpdateContent(ctx context.Context, id string, content string) error
	UpdateSignatureRequest(ctx context.Context, id string, signers []entities.Signer, platform string, resend bool) error
	UpdateSignatureSent(ctx context.Context, id string, documentID string, sentAt time.Time) error
	UpdateSignatureStatus(ctx context.Context, id string, status entities.SignatureStatus, signedAt *time.Time) error
}
