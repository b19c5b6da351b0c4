package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrInvalidCollectPayload       = errors.New("invalid collection payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

const monthlyInstallments = 12

// IPaymentScheduleUseCase manages a contract's payment schedule and its
// optional collection through the external payment provider.
//
// Schedule generation failing must never fail the contract generation that
// preceded it; callers invoke it separately (or fire-and-forget).

type IPaymentScheduleUseCase interface {
	GenerateFromContract(ctx context.Context, contractID string) ([]entities.Payment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Payment, error)
	CollectPayment(ctx context.Context, paymentID string, payload json.RawMessage) (entities.Payment, error)
}

type PaymentScheduleUseCase struct {
	payments  interfaces.IPaymentRepository
	contracts interfaces.IContractRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentScheduleUseCase = (*PaymentScheduleUseCase)(nil)

func NewPaymentScheduleUseCase(payments interfaces.IPaymentRepository, contracts interfaces.IContractRepository, gateway interfaces.IPaymentGateway) *PaymentScheduleUseCase {
	return &PaymentScheduleUseCase{payments: payments, contracts: contracts, gateway: gateway}
}

// GenerateFromContract derives the schedule from the contract's total and
// billing period. An existing schedule is returned untouched.
func (u *PaymentScheduleUseCase) GenerateFromContract(ctx context.Context, contractID string) ([]entities.Payment, error) {
	contractID = strings.TrimSpace(contractID)
	log.Printf("[payments][usecase] generate start contract_id=%q", contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	if u.contracts == nil || u.payments == nil {
		return nil, errors.New("payment schedule dependencies not configured")
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.ID == "" {
		return nil, ErrContractNotFound
	}

	existing, err := u.payments.ListByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Printf("[payments][usecase] schedule already exists contract_id=%s entries=%d", contractID, len(existing))
		return existing, nil
	}

	schedule := buildSchedule(contract)
	created, err := u.payments.CreateMany(ctx, schedule)
	if err != nil {
		log.Printf("[payments][usecase] schedule persist failed contract_id=%s err=%v", contractID, err)
		return nil, err
	}
	log.Printf("[payments][usecase] generate success contract_id=%s entries=%d", contractID, len(created))
	return created, nil
}

func (u *PaymentScheduleUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.Payment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.payments.ListByContractID(ctx, contractID)
}

// CollectPayment pushes one scheduled payment to the payment provider and
// stores the provider outcome on the record. The schedule entry in the
// database is the source of truth for the amount.
func (u *PaymentScheduleUseCase) CollectPayment(ctx context.Context, paymentID string, payload json.RawMessage) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	log.Printf("[payments][usecase] collect start payment_id=%q payload_len=%d", paymentID, len(payload))
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidCollectPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = p.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Payment %s", p.Title)
		}
		reqMap["transaction_amount"] = parseAmount(p.Amount)
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payments][usecase] gateway failed payment_id=%s err=%v", paymentID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}

	if err := u.payments.UpdateProviderResult(ctx, p.ID, providerPaymentID, providerStatus, providerResp); err != nil {
		log.Printf("[payments][usecase] provider result persist failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payments][usecase] collect success payment_id=%s provider_payment_id=%s provider_status=%s", paymentID, providerPaymentID, providerStatus)

	p.ProviderPaymentID = providerPaymentID
	p.ProviderStatus = providerStatus
	p.ProviderPayloadRaw = providerResp
	return p, nil
}

func buildSchedule(contract entities.Contract) []entities.Payment {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	newPayment := func(title, amount, dueDate, altDueDate string, idx int) entities.Payment {
		return entities.Payment{
			ID:         uuid.NewString(),
			ContractID: contract.ID,
			Title:      title,
			Amount:     amount,
			DueDate:    dueDate,
			AltDueDate: altDueDate,
			OrderIndex: idx,
			CreatedAt:  now,
		}
	}

	switch contract.BillingPeriod {
	case entities.BillingPeriodMonthly:
		amount := formatAmount(contract.TotalAmount / monthlyInstallments)
		schedule := make([]entities.Payment, 0, monthlyInstallments)
		for i := 0; i < monthlyInstallments; i++ {
			due := now.AddDate(0, i, 0).Format("2006-01-02")
			schedule = append(schedule, newPayment(fmt.Sprintf("Installment %d", i+1), amount, due, "", i))
		}
		return schedule
	case entities.BillingPeriodYearly:
		return []entities.Payment{
			newPayment("Annual payment", formatAmount(contract.TotalAmount), contract.DueDate, "", 0),
		}
	default:
		half := formatAmount(contract.TotalAmount / 2)
		return []entities.Payment{
			newPayment("Deposit", half, today, "", 0),
			newPayment("Final payment", half, "", "On completion", 1),
		}
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
