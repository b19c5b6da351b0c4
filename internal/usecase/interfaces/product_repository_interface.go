package interfaces

import (
	"context"

	"agency_crm/internal/domain/entities"
)

// IProductRepository abstracts product reads and the contract_products
// junction writes.

type IProductRepository interface {
	LinkToContract(ctx context.Context, contractID string, productIDs []string) error
	ListByContractID(ctx context.Context, contractID string) ([]entities.Product, error)
}
