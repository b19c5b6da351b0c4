package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agency_crm/internal/domain/entities"
	mock_interfaces "agency_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentScheduleUseCase_GenerateFromContract(t *testing.T) {
	t.Run("empty contract id", func(t *testing.T) {
		uc := NewPaymentScheduleUseCase(nil, nil, nil)
		_, err := uc.GenerateFromContract(context.Background(), " ")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{}, nil)

		uc := NewPaymentScheduleUseCase(payments, contracts, nil)
		_, err := uc.GenerateFromContract(context.Background(), "c-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("existing schedule returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{ID: "c-1"}, nil)
		existing := []entities.Payment{{ID: "pay-1", ContractID: "c-1", Title: "Deposit"}}
		payments.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(existing, nil)

		uc := NewPaymentScheduleUseCase(payments, contracts, nil)
		got, err := uc.GenerateFromContract(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "pay-1" {
			t.Fatalf("expected existing schedule, got %+v", got)
		}
	})

	t.Run("one_time splits fifty fifty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{
			ID:            "c-1",
			TotalAmount:   5000,
			BillingPeriod: entities.BillingPeriodOneTime,
		}, nil)
		payments.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(nil, nil)
		payments.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, schedule []entities.Payment) ([]entities.Payment, error) {
				return schedule, nil
			})

		uc := NewPaymentScheduleUseCase(payments, contracts, nil)
		got, err := uc.GenerateFromContract(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Title != "Deposit" || got[0].Amount != "2500.00" || got[0].DueDate == "" {
			t.Fatalf("unexpected deposit %+v", got[0])
		}
		if got[1].Title != "Final payment" || got[1].Amount != "2500.00" || got[1].AltDueDate != "On completion" || got[1].DueDate != "" {
			t.Fatalf("unexpected final payment %+v", got[1])
		}
	})

	t.Run("monthly builds twelve installments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{
			ID:            "c-1",
			TotalAmount:   1200,
			BillingPeriod: entities.BillingPeriodMonthly,
		}, nil)
		payments.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(nil, nil)
		payments.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, schedule []entities.Payment) ([]entities.Payment, error) {
				return schedule, nil
			})

		uc := NewPaymentScheduleUseCase(payments, contracts, nil)
		got, err := uc.GenerateFromContract(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != monthlyInstallments {
			t.Fatalf("expected %d entries, got %d", monthlyInstallments, len(got))
		}
		for i, p := range got {
			if p.Amount != "100.00" {
				t.Fatalf("expected 100.00 per installment, got %+v", p)
			}
			if p.OrderIndex != i {
				t.Fatalf("expected order index %d, got %+v", i, p)
			}
		}
		if got[0].Title != "Installment 1" || got[11].Title != "Installment 12" {
			t.Fatalf("unexpected installment titles %q, %q", got[0].Title, got[11].Title)
		}
	})

	t.Run("yearly single payment at due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{
			ID:            "c-1",
			TotalAmount:   9600,
			BillingPeriod: entities.BillingPeriodYearly,
			DueDate:       "2027-02-01",
		}, nil)
		payments.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(nil, nil)
		payments.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, schedule []entities.Payment) ([]entities.Payment, error) {
				return schedule, nil
			})

		uc := NewPaymentScheduleUseCase(payments, contracts, nil)
		got, err := uc.GenerateFromContract(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected single entry, got %d", len(got))
		}
		if got[0].Amount != "9600.00" || got[0].DueDate != "2027-02-01" {
			t.Fatalf("unexpected yearly payment %+v", got[0])
		}
	})
}

func TestPaymentScheduleUseCase_CollectPayment(t *testing.T) {
	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPaymentScheduleUseCase(nil, nil, nil)
		_, err := uc.CollectPayment(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewPaymentScheduleUseCase(nil, nil, nil)
		_, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidCollectPayload) {
			t.Fatalf("expected ErrInvalidCollectPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentScheduleUseCase(nil, nil, nil)
		_, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		uc := NewPaymentScheduleUseCase(payments, nil, gateway)
		_, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("payload enriched from schedule entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{
			ID:         "pay-1",
			ContractID: "c-1",
			Title:      "Deposit",
			Amount:     "2500.00",
			CreatedAt:  time.Now().UTC(),
		}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if req["external_reference"] != "pay-1" {
					t.Fatalf("expected external_reference from payment id, got %v", req["external_reference"])
				}
				if req["transaction_amount"] != 2500.0 {
					t.Fatalf("expected amount from schedule entry, got %v", req["transaction_amount"])
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("expected caller fields preserved, got %v", req["payment_method_id"])
				}
				return "mp-77", "approved", json.RawMessage(`{"id":"mp-77","status":"approved"}`), nil
			})
		payments.EXPECT().UpdateProviderResult(gomock.Any(), "pay-1", "mp-77", "approved", gomock.Any()).Return(nil)

		uc := NewPaymentScheduleUseCase(payments, nil, gateway)
		got, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProviderPaymentID != "mp-77" || got.ProviderStatus != "approved" {
			t.Fatalf("expected provider result on payment, got %+v", got)
		}
	})

	t.Run("gateway bad request maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", Amount: "100"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`mercadopago: {"error":"bad_request","status":400}`))

		uc := NewPaymentScheduleUseCase(payments, nil, gateway)
		_, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("gateway unauthorized maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", Amount: "100"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`mercadopago: {"error":"unauthorized","status":401}`))

		uc := NewPaymentScheduleUseCase(payments, nil, gateway)
		_, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("provider result persist failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", Amount: "100"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", nil, nil)
		boom := errors.New("update failed")
		payments.EXPECT().UpdateProviderResult(gomock.Any(), "pay-1", "mp-1", "approved", gomock.Any()).Return(boom)

		uc := NewPaymentScheduleUseCase(payments, nil, gateway)
		if _, err := uc.CollectPayment(context.Background(), "pay-1", json.RawMessage(`{}`)); !errors.Is(err, boom) {
			t.Fatalf("expected persist error, got %v", err)
		}
	})
}
