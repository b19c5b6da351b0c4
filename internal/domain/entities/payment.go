package entities

import (
	"encoding/json"
	"time"
)

// Payment is one entry of a contract's payment schedule. Amount stays a raw
// string; all aggregation uses parse-or-zero semantics.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// Provider fields are only written when a scheduled payment is pushed to the
// external payment provider for collection. The raw provider response is kept
// for traceability, the same way the billing payloads are audited elsewhere.

type Payment struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	Title      string `json:"title"`
	Amount     string `json:"amount"`
	DueDate    string `json:"due_date,omitempty"`
	AltDueDate string `json:"alt_due_date,omitempty"`
	OrderIndex int    `json:"order_index"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
