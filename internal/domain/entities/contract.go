package entities

import "time"

// ContractStatus represents the lifecycle of a contract record.

type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusPendingSignature ContractStatus = "pending_signature"
	ContractStatusSigned           ContractStatus = "signed"
	ContractStatusCancelled        ContractStatus = "cancelled"
	ContractStatusExpired          ContractStatus = "expired"
)

// SignatureStatus tracks the e-signature provider side of a contract.
//
// Transitions are forward-only: draft -> sent -> signed|declined|expired.
// Once a terminal status is reached the lifecycle manager never overwrites it.

type SignatureStatus string

const (
	SignatureStatusDraft    SignatureStatus = "draft"
	SignatureStatusSent     SignatureStatus = "sent"
	SignatureStatusSigned   SignatureStatus = "signed"
	SignatureStatusDeclined SignatureStatus = "declined"
	SignatureStatusExpired  SignatureStatus = "expired"
)

// IsTerminal reports whether s admits no further provider-driven transitions.
func (s SignatureStatus) IsTerminal() bool {
	switch s {
	case SignatureStatusSigned, SignatureStatusDeclined, SignatureStatusExpired:
		return true
	}
	return false
}

// BillingPeriod drives the contract due-date rule and the payment schedule shape.

type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
	BillingPeriodOneTime BillingPeriod = "one_time"
)

// Signer is one party asked to sign a contract.

type Signer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Contract is the generated agreement document tied to a proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// Content is only written by the generation flow immediately after
// compilation; signature_* fields are only written by the signature
// lifecycle manager.

type Contract struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ProposalID string `json:"proposal_id,omitempty"`
	CompanyID  string `json:"company_id"`
	ParentID   string `json:"parent_id,omitempty"`

	Content string         `json:"content,omitempty"`
	Status  ContractStatus `json:"status"`

	SignatureStatus     SignatureStatus `json:"signature_status,omitempty"`
	SignatureDocumentID string          `json:"signature_document_id,omitempty"`
	SignaturePlatform   string          `json:"signature_platform,omitempty"`
	SignatureSigners    []Signer        `json:"signature_signers,omitempty"`
	SignatureSentAt     *time.Time      `json:"signature_sent_at,omitempty"`
	SignatureSignedAt   *time.Time      `json:"signature_signed_at,omitempty"`

	TotalAmount   float64       `json:"total_amount"`
	BillingPeriod BillingPeriod `json:"billing_period"`
	Platform      string        `json:"platform"`

	StartDate string `json:"start_date,omitempty"`
	DueDate   string `json:"due_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
