package entities

import "time"

// Company is the client a proposal/contract belongs to. Only the fields the
// contract flow reads are modelled here; the full company record lives in the
// dashboard's own tables.

type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProposalProduct is a priced line item on a proposal. Price is kept as the
// raw string from the source record; totals use parse-or-zero semantics.

type ProposalProduct struct {
	ProductID string  `json:"product_id"`
	Price     string  `json:"price"`
	Product   Product `json:"product"`
}

// Proposal is the read-only source document a contract is generated from.
// The repository returns it with company and product lines already joined.
//
// Storage model (DynamoDB):
//   - PK: id (company and proposal_products denormalized on the item)

type Proposal struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Tier     string            `json:"tier,omitempty"`
	Status   string            `json:"status"`
	Company  Company           `json:"company"`
	AuthorID string            `json:"author_id,omitempty"`
	Products []ProposalProduct `json:"proposal_products"`

	CreatedAt time.Time `json:"created_at"`
}

// Actor is the resolved acting user for a request. Threaded explicitly into
// the usecases instead of an ambient current-user lookup.

type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
