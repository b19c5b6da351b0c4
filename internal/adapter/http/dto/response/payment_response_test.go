package response

import (
	"testing"

	"agency_crm/internal/domain/entities"
)

func TestFromPayments(t *testing.T) {
	res := FromPayments([]entities.Payment{
		{ID: "pay-1", ContractID: "c-1", Title: "Deposit", Amount: "2500.00", DueDate: "2026-01-15"},
		{ID: "pay-2", ContractID: "c-1", Title: "Final payment", Amount: "2500.00", AltDueDate: "On completion", OrderIndex: 1, ProviderPaymentID: "mp-77", ProviderStatus: "approved"},
	})
	if !res.Success {
		t.Fatalf("expected success flag, got %+v", res)
	}
	if len(res.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(res.Payments))
	}
	if res.Payments[0].Title != "Deposit" || res.Payments[0].DueDate != "2026-01-15" {
		t.Fatalf("unexpected first payment: %+v", res.Payments[0])
	}
	if res.Payments[1].AltDueDate != "On completion" || res.Payments[1].ProviderPaymentID != "mp-77" {
		t.Fatalf("unexpected second payment: %+v", res.Payments[1])
	}
}

func TestFromPayments_Empty(t *testing.T) {
	res := FromPayments(nil)
	if !res.Success {
		t.Fatalf("expected success flag, got %+v", res)
	}
	if res.Payments == nil || len(res.Payments) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", res.Payments)
	}
}
