package entities

// Milestone is a flat deliverable milestone selectable for contract inclusion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id

type Milestone struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsSelected  bool   `json:"is_selected"`
	OrderIndex  int    `json:"order_index"`
}
