package entities

// ContractPartView is one reusable content block resolved for rendering:
// link ordering applied and any custom-content override already folded in.
// Content is a Handlebars-like template with `{{field}}` placeholders,
// `{{#each arrayField}}...{{/each}}` loops and the reserved `{{payments}}`
// token.
//
// Storage model (DynamoDB):
//   - contract_parts: PK id
//   - contract_part_links: PK id, GSI1 (contract_id-index): contract_id

type ContractPartView struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}
