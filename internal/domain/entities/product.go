package entities

// ProductDeliverable is a sub-record of a product. Source data carries either
// objects with a title (sometimes name) field or plain strings; repositories
// decode plain strings into Title.

type ProductDeliverable struct {
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Product as consumed by the contract compiler.
//
// Storage model (DynamoDB):
//   - products: PK id (deliverables denormalized on the item)
//   - contract_products join: see repository.JoinRelation

type Product struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description,omitempty"`
	Price        string               `json:"price,omitempty"`
	Platform     string               `json:"platform,omitempty"`
	IsAddon      bool                 `json:"is_addon,omitempty"`
	Deliverables []ProductDeliverable `json:"deliverables,omitempty"`
}
