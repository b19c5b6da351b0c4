package interfaces

import (
	"context"

	"agency_crm/internal/domain/entities"
)

// IProposalRepository abstracts read-only access to proposals. The returned
// proposal carries its company and priced product lines already joined.

type IProposalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
}
