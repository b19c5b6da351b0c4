package response

import (
	"testing"
	"time"

	"agency_crm/internal/domain/entities"
)

func TestFromContract(t *testing.T) {
	sentAt := time.Now().UTC()
	c := entities.Contract{
		ID:                  "c-1",
		Title:               "Website Redesign Contract",
		ProposalID:          "prop-1",
		CompanyID:           "comp-1",
		Content:             "<div>doc</div>",
		Status:              entities.ContractStatusDraft,
		SignatureStatus:     entities.SignatureStatusSent,
		SignatureDocumentID: "doc-9",
		SignaturePlatform:   "esignatures",
		SignatureSentAt:     &sentAt,
		TotalAmount:         4500.50,
		BillingPeriod:       entities.BillingPeriodOneTime,
		Platform:            "shopify",
		StartDate:           "2026-01-15",
		DueDate:             "2026-02-14",
	}

	res := FromContract(c)
	if !res.Success {
		t.Fatalf("expected success flag, got %+v", res)
	}
	if res.ID != "c-1" || res.ProposalID != "prop-1" || res.CompanyID != "comp-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "draft" || res.SignatureStatus != "sent" || res.SignatureDocumentID != "doc-9" {
		t.Fatalf("unexpected statuses: %+v", res)
	}
	if res.TotalAmount != 4500.50 || res.BillingPeriod != "one_time" || res.Platform != "shopify" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.SignatureSentAt == nil || !res.SignatureSentAt.Equal(sentAt) {
		t.Fatalf("unexpected sent at: %+v", res)
	}
}
