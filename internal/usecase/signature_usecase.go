package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"
)

var (
	ErrSignatureGatewayNotConfigured = errors.New("signature gateway not configured")
	ErrUnknownWebhookEvent           = errors.New("unknown webhook event")
)

var signerEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	defaultSignaturePlatform = "esignatures"
	signatureGatewayTimeout  = 30 * time.Second
)

// SignerValidationError reports the signers that failed validation. An empty
// Invalid list means no signers were supplied at all.

type SignerValidationError struct {
	Invalid []entities.Signer
}

func (e *SignerValidationError) Error() string {
	if len(e.Invalid) == 0 {
		return "at least one signer is required"
	}
	names := make([]string, 0, len(e.Invalid))
	for _, s := range e.Invalid {
		names = append(names, fmt.Sprintf("%q <%s>", s.Name, s.Email))
	}
	return "invalid signers: " + strings.Join(names, ", ")
}

// SendContractInput is the send-for-signature command.

type SendContractInput struct {
	ContractID  string
	Platform    string
	Signers     []entities.Signer
	ForceResend bool
}

// SendResult is the structured outcome of a send attempt. Gateway failures
// land here with Success=false instead of surfacing as errors, so callers
// decide retry/resend policy themselves.

type SendResult struct {
	Success    bool   `json:"success"`
	DocumentID string `json:"documentId,omitempty"`
	SignURL    string `json:"signUrl,omitempty"`
	Message    string `json:"message,omitempty"`
	CanResend  bool   `json:"canResend"`
	Error      string `json:"error,omitempty"`
}

// SignatureStatusView is the reconciled status snapshot for a contract.

type SignatureStatusView struct {
	ContractID string                   `json:"contractId"`
	DocumentID string                   `json:"documentId,omitempty"`
	Status     entities.SignatureStatus `json:"status"`
	SentAt     *time.Time               `json:"sentAt,omitempty"`
	SignedAt   *time.Time               `json:"signedAt,omitempty"`
}

// WebhookEvent is the inbound provider callback payload.

type WebhookEvent struct {
	Event      string `json:"event"`
	DocumentID string `json:"documentId"`
	ContractID string `json:"contractId"`
	Status     string `json:"status"`
}

// ISignatureUseCase drives the e-signature lifecycle of a contract:
// draft -> sent -> signed|declined|expired, with the terminal states
// immutable.

type ISignatureUseCase interface {
	SendContract(ctx context.Context, in SendContractInput) (SendResult, error)
	GetStatus(ctx context.Context, contractID string) (SignatureStatusView, error)
	HandleWebhookEvent(ctx context.Context, event WebhookEvent) (SignatureStatusView, error)
}

type SignatureUseCase struct {
	contracts interfaces.IContractRepository
	gateway   interfaces.ISignatureGateway
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(contracts interfaces.IContractRepository, gateway interfaces.ISignatureGateway) *SignatureUseCase {
	return &SignatureUseCase{contracts: contracts, gateway: gateway}
}

// SendContract validates signers, persists the request metadata and hands
// the compiled document to the provider. Signer validation happens before
// any external call or database write.
func (u *SignatureUseCase) SendContract(ctx context.Context, in SendContractInput) (SendResult, error) {
	contractID := strings.TrimSpace(in.ContractID)
	log.Printf("[signature][usecase] send start contract_id=%q signers=%d force_resend=%t", contractID, len(in.Signers), in.ForceResend)
	if contractID == "" {
		return SendResult{}, ErrInvalidContractID
	}
	if err := validateSigners(in.Signers); err != nil {
		log.Printf("[signature][usecase] signer validation failed contract_id=%s err=%v", contractID, err)
		return SendResult{}, err
	}
	if u.contracts == nil {
		return SendResult{}, errors.New("contract repository not configured")
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		log.Printf("[signature][usecase] failed loading contract contract_id=%s err=%v", contractID, err)
		return SendResult{}, err
	}
	if contract.ID == "" {
		return SendResult{}, ErrContractNotFound
	}

	if contract.SignatureStatus.IsTerminal() {
		log.Printf("[signature][usecase] contract in terminal signature state contract_id=%s status=%s", contractID, contract.SignatureStatus)
		return SendResult{
			Success:   false,
			Message:   fmt.Sprintf("contract signature is already %s", contract.SignatureStatus),
			CanResend: false,
		}, nil
	}
	if contract.SignatureStatus == entities.SignatureStatusSent && !in.ForceResend {
		log.Printf("[signature][usecase] contract already sent contract_id=%s", contractID)
		return SendResult{
			Success:   false,
			Message:   "contract was already sent for signature; set forceResend to send again",
			CanResend: true,
		}, nil
	}

	if u.gateway == nil {
		return SendResult{}, ErrSignatureGatewayNotConfigured
	}

	platform := strings.TrimSpace(in.Platform)
	if platform == "" {
		platform = defaultSignaturePlatform
	}

	// Metadata goes to the database first so it survives a provider failure.
	if err := u.contracts.UpdateSignatureRequest(ctx, contractID, in.Signers, platform, in.ForceResend); err != nil {
		log.Printf("[signature][usecase] signature metadata persist failed contract_id=%s err=%v", contractID, err)
		return SendResult{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, signatureGatewayTimeout)
	defer cancel()
	sent, err := u.gateway.Send(callCtx, interfaces.SignatureDocument{
		Title:               contract.Title,
		HTMLContent:         contract.Content,
		ExternalReferenceID: contract.ID,
		WebhookURL:          strings.TrimSpace(os.Getenv("ESIGN_WEBHOOK_URL")),
		Signers:             in.Signers,
	})
	if err != nil {
		log.Printf("[signature][usecase] gateway send failed contract_id=%s err=%v", contractID, err)
		return SendResult{
			Success:   false,
			Message:   "signature provider call failed",
			CanResend: true,
			Error:     err.Error(),
		}, nil
	}

	now := time.Now().UTC()
	if err := u.contracts.UpdateSignatureSent(ctx, contractID, sent.DocumentID, now); err != nil {
		log.Printf("[signature][usecase] sent-state persist failed contract_id=%s document_id=%s err=%v", contractID, sent.DocumentID, err)
		return SendResult{}, err
	}
	log.Printf("[signature][usecase] send success contract_id=%s document_id=%s", contractID, sent.DocumentID)

	return SendResult{
		Success:    true,
		DocumentID: sent.DocumentID,
		SignURL:    sent.SignURL,
		Message:    "contract sent for signature",
	}, nil
}

// GetStatus returns the stored signature status, reconciling with the
// provider only while the contract is in the sent state. Terminal contracts
// are never re-queried.
func (u *SignatureUseCase) GetStatus(ctx context.Context, contractID string) (SignatureStatusView, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return SignatureStatusView{}, ErrInvalidContractID
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return SignatureStatusView{}, err
	}
	if contract.ID == "" {
		return SignatureStatusView{}, ErrContractNotFound
	}

	if contract.SignatureStatus != entities.SignatureStatusSent || contract.SignatureDocumentID == "" {
		return signatureView(contract), nil
	}
	if u.gateway == nil {
		return signatureView(contract), nil
	}

	callCtx, cancel := context.WithTimeout(ctx, signatureGatewayTimeout)
	defer cancel()
	providerStatus, err := u.gateway.GetStatus(callCtx, contract.SignatureDocumentID)
	if err != nil {
		// Poll failures are non-fatal; the stored status stands.
		log.Printf("[signature][usecase] status poll failed contract_id=%s document_id=%s err=%v", contractID, contract.SignatureDocumentID, err)
		return signatureView(contract), nil
	}

	contract, err = u.reconcileStatus(ctx, contract, MapProviderSignatureStatus(providerStatus))
	if err != nil {
		return SignatureStatusView{}, err
	}
	return signatureView(contract), nil
}

// HandleWebhookEvent applies a provider callback through the same
// reconciliation path as polling.
func (u *SignatureUseCase) HandleWebhookEvent(ctx context.Context, event WebhookEvent) (SignatureStatusView, error) {
	contractID := strings.TrimSpace(event.ContractID)
	log.Printf("[signature][usecase] webhook received contract_id=%q event=%q status=%q", contractID, event.Event, event.Status)
	if contractID == "" {
		return SignatureStatusView{}, ErrInvalidContractID
	}

	status, ok := webhookEventStatus(event)
	if !ok {
		return SignatureStatusView{}, ErrUnknownWebhookEvent
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return SignatureStatusView{}, err
	}
	if contract.ID == "" {
		return SignatureStatusView{}, ErrContractNotFound
	}

	contract, err = u.reconcileStatus(ctx, contract, status)
	if err != nil {
		return SignatureStatusView{}, err
	}
	return signatureView(contract), nil
}

// reconcileStatus persists a mapped provider status when it differs from the
// stored one. Terminal stored statuses are immutable; equal statuses skip
// the write entirely.
func (u *SignatureUseCase) reconcileStatus(ctx context.Context, contract entities.Contract, status entities.SignatureStatus) (entities.Contract, error) {
	if contract.SignatureStatus.IsTerminal() {
		log.Printf("[signature][usecase] reconcile skipped (terminal) contract_id=%s status=%s", contract.ID, contract.SignatureStatus)
		return contract, nil
	}
	if status == contract.SignatureStatus {
		return contract, nil
	}

	var signedAt *time.Time
	if status == entities.SignatureStatusSigned {
		now := time.Now().UTC()
		signedAt = &now
	}
	if err := u.contracts.UpdateSignatureStatus(ctx, contract.ID, status, signedAt); err != nil {
		log.Printf("[signature][usecase] status persist failed contract_id=%s status=%s err=%v", contract.ID, status, err)
		return entities.Contract{}, err
	}
	log.Printf("[signature][usecase] status reconciled contract_id=%s %s -> %s", contract.ID, contract.SignatureStatus, status)

	contract.SignatureStatus = status
	if signedAt != nil {
		contract.SignatureSignedAt = signedAt
	}
	return contract, nil
}

// MapProviderSignatureStatus translates the provider vocabulary into the
// internal one. Unrecognized provider statuses pass through unchanged.
func MapProviderSignatureStatus(providerStatus string) entities.SignatureStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "pending":
		return entities.SignatureStatusSent
	case "completed":
		return entities.SignatureStatusSigned
	case "declined":
		return entities.SignatureStatusDeclined
	case "expired":
		return entities.SignatureStatusExpired
	default:
		return entities.SignatureStatus(providerStatus)
	}
}

func webhookEventStatus(event WebhookEvent) (entities.SignatureStatus, bool) {
	switch event.Event {
	case "document.signed":
		return entities.SignatureStatusSigned, true
	case "document.declined":
		return entities.SignatureStatusDeclined, true
	case "document.expired":
		return entities.SignatureStatusExpired, true
	}
	if s := strings.TrimSpace(event.Status); s != "" {
		return MapProviderSignatureStatus(s), true
	}
	return "", false
}

func validateSigners(signers []entities.Signer) error {
	if len(signers) == 0 {
		return &SignerValidationError{}
	}
	var invalid []entities.Signer
	for _, s := range signers {
		if strings.TrimSpace(s.Name) == "" || !signerEmailRe.MatchString(s.Email) {
			invalid = append(invalid, s)
		}
	}
	if len(invalid) > 0 {
		return &SignerValidationError{Invalid: invalid}
	}
	return nil
}

func signatureView(c entities.Contract) SignatureStatusView {
	return SignatureStatusView{
		ContractID: c.ID,
		DocumentID: c.SignatureDocumentID,
		Status:     c.SignatureStatus,
		SentAt:     c.SignatureSentAt,
		SignedAt:   c.SignatureSignedAt,
	}
}
