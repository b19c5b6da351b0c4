package response

import "agency_crm/internal/domain/entities"

type PaymentResponse struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	Title      string `json:"title"`
	Amount     string `json:"amount"`
	DueDate    string `json:"due_date,omitempty"`
	AltDueDate string `json:"alt_due_date,omitempty"`
	OrderIndex int    `json:"order_index"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
}

type PaymentListResponse struct {
	Success  bool              `json:"success"`
	Payments []PaymentResponse `json:"payments"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		ContractID:        p.ContractID,
		Title:             p.Title,
		Amount:            p.Amount,
		DueDate:           p.DueDate,
		AltDueDate:        p.AltDueDate,
		OrderIndex:        p.OrderIndex,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromPayments(payments []entities.Payment) PaymentListResponse {
	out := PaymentListResponse{Success: true, Payments: make([]PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		out.Payments = append(out.Payments, FromPayment(p))
	}
	return out
}
