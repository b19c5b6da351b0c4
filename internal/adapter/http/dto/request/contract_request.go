package request

import (
	"strings"

	"agency_crm/internal/domain/entities"
)

const (
	ActionGenerateContract = "generate_contract"
	ActionGeneratePayments = "generate_payments"
	ActionSendForSignature = "send_for_signature"
)

// SignerRequest is one signer as posted by the dashboard.

type SignerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContractActionRequest is the action-dispatch payload of POST /contracts.
// Which fields are required depends on the action; handlers validate per
// action and return 400 on missing ids.

type ContractActionRequest struct {
	Action           string          `json:"action" binding:"required"`
	ProposalID       string          `json:"proposalId"`
	ContractID       string          `json:"contractId"`
	BillingPeriod    string          `json:"billingPeriod"`
	SelectedProducts []string        `json:"selectedProducts"`
	GeneratePayments bool            `json:"generatePayments"`
	Platform         string          `json:"platform"`
	Signers          []SignerRequest `json:"signers"`
	ForceResend      bool            `json:"forceResend"`
}

func (r ContractActionRequest) ResolveProposalID() string {
	return strings.TrimSpace(r.ProposalID)
}

func (r ContractActionRequest) ResolveContractID() string {
	return strings.TrimSpace(r.ContractID)
}

// ResolveBillingPeriod maps the posted value onto the known billing periods,
// defaulting to one_time for anything unrecognized.
func (r ContractActionRequest) ResolveBillingPeriod() entities.BillingPeriod {
	switch entities.BillingPeriod(strings.TrimSpace(r.BillingPeriod)) {
	case entities.BillingPeriodMonthly:
		return entities.BillingPeriodMonthly
	case entities.BillingPeriodYearly:
		return entities.BillingPeriodYearly
	default:
		return entities.BillingPeriodOneTime
	}
}

func (r ContractActionRequest) ResolveSigners() []entities.Signer {
	return toSigners(r.Signers)
}

func toSigners(in []SignerRequest) []entities.Signer {
	signers := make([]entities.Signer, 0, len(in))
	for _, s := range in {
		signers = append(signers, entities.Signer{
			Name:  strings.TrimSpace(s.Name),
			Email: strings.TrimSpace(s.Email),
		})
	}
	return signers
}
