package interfaces

import (
	"context"

	"agency_crm/internal/domain/entities"
)

// IContractPartRepository resolves the ordered template parts of a contract.
// Excluded parts (is_included=false) are filtered before the compiler ever
// sees them; custom-content overrides are folded into the returned views.

type IContractPartRepository interface {
	ListIncludedByContractID(ctx context.Context, contractID string) ([]entities.ContractPartView, error)
}
