package interfaces

import (
	"context"
	"encoding/json"

	"agency_crm/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for the payment
// schedule. ListByContractID returns entries sorted by order_index.

type IPaymentRepository interface {
	CreateMany(ctx context.Context, payments []entities.Payment) ([]entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Payment, error)
	UpdateProviderResult(ctx context.Context, id string, providerPaymentID string, providerStatus string, providerPayload json.RawMessage) error
}
