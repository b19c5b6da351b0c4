package repository

import (
	"context"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName         = "products"
	defaultContractProductsTableName = "contract_products"
)

// deliverableItem tolerates both shapes the dashboard stores: a map with
// title (sometimes name) or a plain string, which lands in Title.

type deliverableItem struct {
	Title string
	Name  string
}

func (d deliverableItem) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	m := map[string]types.AttributeValue{}
	if d.Title != "" {
		m["title"] = &types.AttributeValueMemberS{Value: d.Title}
	}
	if d.Name != "" {
		m["name"] = &types.AttributeValueMemberS{Value: d.Name}
	}
	return &types.AttributeValueMemberM{Value: m}, nil
}

func (d *deliverableItem) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		d.Title = v.Value
	case *types.AttributeValueMemberM:
		if s, ok := v.Value["title"].(*types.AttributeValueMemberS); ok {
			d.Title = s.Value
		}
		if s, ok := v.Value["name"].(*types.AttributeValueMemberS); ok {
			d.Name = s.Value
		}
	}
	return nil
}

type productItem struct {
	ID           string            `dynamodbav:"id"`
	Title        string            `dynamodbav:"title"`
	Description  string            `dynamodbav:"description,omitempty"`
	Price        string            `dynamodbav:"price,omitempty"`
	Platform     string            `dynamodbav:"platform,omitempty"`
	IsAddon      bool              `dynamodbav:"is_addon,omitempty"`
	Deliverables []deliverableItem `dynamodbav:"deliverables,omitempty"`
}

// ProductDynamoRepository reads products and maintains the contract_products
// junction through the shared JoinRelation helpers.
//
// Table requirements:
//   - products: PK id (string), deliverables denormalized
//   - contract_products: PK id, GSI contract_id-index (PK: contract_id)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	relation  JoinRelation
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		relation: JoinRelation{
			Table:       getenvDefault("CONTRACT_PRODUCTS_TABLE", defaultContractProductsTableName),
			SourceKey:   "contract_id",
			TargetKey:   "product_id",
			SourceIndex: "contract_id-index",
		},
	}
}

func (r *ProductDynamoRepository) LinkToContract(ctx context.Context, contractID string, productIDs []string) error {
	return linkRecords(ctx, r.ddb, r.relation, contractID, productIDs)
}

func (r *ProductDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Product, error) {
	ids, err := listTargetIDs(ctx, r.ddb, r.relation, contractID)
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(out.Item) == 0 {
			continue
		}
		var it productItem
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func fromProductItem(it productItem) entities.Product {
	deliverables := make([]entities.ProductDeliverable, 0, len(it.Deliverables))
	for _, d := range it.Deliverables {
		deliverables = append(deliverables, entities.ProductDeliverable{Title: d.Title, Name: d.Name})
	}
	if len(deliverables) == 0 {
		deliverables = nil
	}
	return entities.Product{
		ID:           it.ID,
		Title:        it.Title,
		Description:  it.Description,
		Price:        it.Price,
		Platform:     it.Platform,
		IsAddon:      it.IsAddon,
		Deliverables: deliverables,
	}
}
