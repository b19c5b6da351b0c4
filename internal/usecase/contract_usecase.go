package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrContractNotFound  = errors.New("contract not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidContractID = errors.New("invalid contract id")
	ErrActorUnresolved   = errors.New("acting user could not be resolved")
)

const (
	defaultPlatform       = "wordpress"
	milestoneFetchLimit   = 5
	defaultDueDateDays    = 30
	basicContractTemplate = `<div class="contract-section">
<h2>Project Contract</h2>
<p>This agreement covers the services described in the accompanying proposal.</p>
<p>Total amount: {{total_amount}}</p>
</div>`
)

// GenerateContractInput carries the caller-chosen generation options.
// An empty SelectedProducts slice means every proposal line is included.

type GenerateContractInput struct {
	ProposalID       string
	BillingPeriod    entities.BillingPeriod
	SelectedProducts []string
}

// IContractUseCase exposes contract generation and reads.

type IContractUseCase interface {
	GenerateFromProposal(ctx context.Context, actor entities.Actor, in GenerateContractInput) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.Contract, error)
}

type ContractUseCase struct {
	contracts  interfaces.IContractRepository
	proposals  interfaces.IProposalRepository
	parts      interfaces.IContractPartRepository
	products   interfaces.IProductRepository
	milestones interfaces.IMilestoneRepository
	payments   interfaces.IPaymentRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	contracts interfaces.IContractRepository,
	proposals interfaces.IProposalRepository,
	parts interfaces.IContractPartRepository,
	products interfaces.IProductRepository,
	milestones interfaces.IMilestoneRepository,
	payments interfaces.IPaymentRepository,
) *ContractUseCase {
	return &ContractUseCase{
		contracts:  contracts,
		proposals:  proposals,
		parts:      parts,
		products:   products,
		milestones: milestones,
		payments:   payments,
	}
}

// GenerateFromProposal creates a draft contract from a proposal, compiles its
// content and persists it. Product-link and compilation failures are logged
// and non-fatal; the contract still comes back, with fallback content in the
// worst case. Only the initial insert (and the content write) propagate.
func (u *ContractUseCase) GenerateFromProposal(ctx context.Context, actor entities.Actor, in GenerateContractInput) (entities.Contract, error) {
	proposalID := strings.TrimSpace(in.ProposalID)
	log.Printf("[contract][usecase] generate start proposal_id=%q actor_id=%q", proposalID, actor.ID)
	if proposalID == "" {
		return entities.Contract{}, ErrInvalidProposalID
	}
	if strings.TrimSpace(actor.ID) == "" {
		log.Printf("[contract][usecase] actor unresolved proposal_id=%s", proposalID)
		return entities.Contract{}, ErrActorUnresolved
	}
	if u.contracts == nil {
		return entities.Contract{}, errors.New("contract repository not configured")
	}
	if u.proposals == nil {
		return entities.Contract{}, errors.New("proposal repository not configured")
	}

	proposal, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		log.Printf("[contract][usecase] failed loading proposal proposal_id=%s err=%v", proposalID, err)
		return entities.Contract{}, err
	}
	if proposal.ID == "" {
		log.Printf("[contract][usecase] proposal not found proposal_id=%s", proposalID)
		return entities.Contract{}, ErrProposalNotFound
	}

	selected := selectedProductLines(proposal.Products, in.SelectedProducts)
	total := 0.0
	for _, line := range selected {
		total += parseAmount(line.Price)
	}

	billingPeriod := in.BillingPeriod
	if billingPeriod == "" {
		billingPeriod = entities.BillingPeriodOneTime
	}

	now := time.Now().UTC()
	contract := entities.Contract{
		ID:            uuid.NewString(),
		Title:         contractTitle(proposal.Title),
		ProposalID:    proposal.ID,
		CompanyID:     proposal.Company.ID,
		Status:        entities.ContractStatusDraft,
		TotalAmount:   total,
		BillingPeriod: billingPeriod,
		Platform:      derivePlatform(selected),
		StartDate:     now.Format("2006-01-02"),
		DueDate:       dueDateFor(billingPeriod, now).Format("2006-01-02"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.contracts.Create(ctx, contract)
	if err != nil {
		log.Printf("[contract][usecase] contract create failed proposal_id=%s err=%v", proposalID, err)
		return entities.Contract{}, err
	}
	log.Printf("[contract][usecase] contract created proposal_id=%s contract_id=%s total=%.2f platform=%s", proposalID, created.ID, total, created.Platform)

	if u.products != nil {
		ids := make([]string, 0, len(selected))
		for _, line := range selected {
			ids = append(ids, line.ProductID)
		}
		if err := u.products.LinkToContract(ctx, created.ID, ids); err != nil {
			// Link failures never fail the generation as a whole.
			log.Printf("[contract][usecase] product linking failed contract_id=%s err=%v", created.ID, err)
		}
	}

	content := u.compileContent(ctx, created)
	if err := u.contracts.UpdateContent(ctx, created.ID, content); err != nil {
		log.Printf("[contract][usecase] content persist failed contract_id=%s err=%v", created.ID, err)
		return entities.Contract{}, err
	}
	created.Content = content
	log.Printf("[contract][usecase] generate success proposal_id=%s contract_id=%s content_len=%d", proposalID, created.ID, len(content))
	return created, nil
}

// compileContent gathers related data and runs the compiler. Any failure
// along the way degrades to the basic template instead of surfacing.
func (u *ContractUseCase) compileContent(ctx context.Context, contract entities.Contract) (content string) {
	record := contractRecordFields(contract)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[contract][usecase] compile panic contract_id=%s recovered=%v", contract.ID, r)
			content = substituteRecordFields(basicContractTemplate, record)
		}
	}()

	parts, related, err := u.fetchRelatedData(ctx, contract)
	if err != nil {
		log.Printf("[contract][usecase] related data fetch failed contract_id=%s err=%v", contract.ID, err)
		return substituteRecordFields(basicContractTemplate, record)
	}
	return CompileContractContent(record, parts, related)
}

func (u *ContractUseCase) fetchRelatedData(ctx context.Context, contract entities.Contract) ([]entities.ContractPartView, RelatedData, error) {
	var related RelatedData
	if u.parts == nil {
		return nil, related, errors.New("contract part repository not configured")
	}
	parts, err := u.parts.ListIncludedByContractID(ctx, contract.ID)
	if err != nil {
		return nil, related, err
	}
	if u.products != nil {
		if related.Products, err = u.products.ListByContractID(ctx, contract.ID); err != nil {
			return nil, related, err
		}
	}
	if u.milestones != nil {
		if related.SelectedMilestones, err = u.milestones.ListSelectedByCompanyID(ctx, contract.CompanyID, milestoneFetchLimit); err != nil {
			return nil, related, err
		}
	}
	if u.payments != nil {
		if related.Payments, err = u.payments.ListByContractID(ctx, contract.ID); err != nil {
			return nil, related, err
		}
	}
	return parts, related, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// GetByProposalID finds the contract generated from a proposal, if any.
func (u *ContractUseCase) GetByProposalID(ctx context.Context, proposalID string) (entities.Contract, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Contract{}, ErrInvalidProposalID
	}

	c, err := u.contracts.GetByProposalID(ctx, proposalID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func selectedProductLines(lines []entities.ProposalProduct, selectedIDs []string) []entities.ProposalProduct {
	if len(selectedIDs) == 0 {
		return lines
	}
	wanted := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		wanted[id] = true
	}
	out := make([]entities.ProposalProduct, 0, len(lines))
	for _, line := range lines {
		if wanted[line.ProductID] {
			out = append(out, line)
		}
	}
	return out
}

func derivePlatform(lines []entities.ProposalProduct) string {
	for _, line := range lines {
		if !line.Product.IsAddon {
			if line.Product.Platform != "" {
				return line.Product.Platform
			}
			break
		}
	}
	return defaultPlatform
}

func dueDateFor(billingPeriod entities.BillingPeriod, from time.Time) time.Time {
	switch billingPeriod {
	case entities.BillingPeriodYearly:
		return from.AddDate(1, 0, 0)
	case entities.BillingPeriodMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, defaultDueDateDays)
	}
}

func contractTitle(proposalTitle string) string {
	if t := strings.TrimSpace(proposalTitle); t != "" {
		return t + " Contract"
	}
	return "Project Contract"
}

// contractRecordFields flattens the contract's scalar fields for the final
// substitution pass. Empty fields are omitted so their placeholders stay
// literal in the output.
func contractRecordFields(c entities.Contract) map[string]string {
	record := map[string]string{}
	put := func(key, value string) {
		if value != "" {
			record[key] = value
		}
	}
	put("id", c.ID)
	put("title", c.Title)
	put("proposal_id", c.ProposalID)
	put("company_id", c.CompanyID)
	put("status", string(c.Status))
	put("billing_period", string(c.BillingPeriod))
	put("platform", c.Platform)
	put("start_date", c.StartDate)
	put("due_date", c.DueDate)
	put("total_amount", formatUSD(c.TotalAmount))
	put("total_amount_raw", strconv.FormatFloat(c.TotalAmount, 'f', -1, 64))
	return record
}
