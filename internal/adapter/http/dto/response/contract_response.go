package response

import (
	"time"

	"agency_crm/internal/domain/entities"
)

type ContractResponse struct {
	Success bool `json:"success"`

	ID         string `json:"id"`
	Title      string `json:"title"`
	ProposalID string `json:"proposal_id,omitempty"`
	CompanyID  string `json:"company_id"`
	Content    string `json:"content,omitempty"`
	Status     string `json:"status"`

	SignatureStatus     string     `json:"signature_status,omitempty"`
	SignatureDocumentID string     `json:"signature_document_id,omitempty"`
	SignaturePlatform   string     `json:"signature_platform,omitempty"`
	SignatureSentAt     *time.Time `json:"signature_sent_at,omitempty"`
	SignatureSignedAt   *time.Time `json:"signature_signed_at,omitempty"`

	TotalAmount   float64 `json:"total_amount"`
	BillingPeriod string  `json:"billing_period"`
	Platform      string  `json:"platform"`
	StartDate     string  `json:"start_date,omitempty"`
	DueDate       string  `json:"due_date,omitempty"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		Success:             true,
		ID:                  c.ID,
		Title:               c.Title,
		ProposalID:          c.ProposalID,
		CompanyID:           c.CompanyID,
		Content:             c.Content,
		Status:              string(c.Status),
		SignatureStatus:     string(c.SignatureStatus),
		SignatureDocumentID: c.SignatureDocumentID,
		SignaturePlatform:   c.SignaturePlatform,
		SignatureSentAt:     c.SignatureSentAt,
		SignatureSignedAt:   c.SignatureSignedAt,
		TotalAmount:         c.TotalAmount,
		BillingPeriod:       string(c.BillingPeriod),
		Platform:            c.Platform,
		StartDate:           c.StartDate,
		DueDate:             c.DueDate,
	}
}
