package repository

import (
	"context"
	"time"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalProductItem struct {
	ProductID string      `dynamodbav:"product_id"`
	Price     string      `dynamodbav:"price,omitempty"`
	Product   productItem `dynamodbav:"product"`
}

type proposalItem struct {
	ID        string                `dynamodbav:"id"`
	Title     string                `dynamodbav:"title"`
	Tier      string                `dynamodbav:"tier,omitempty"`
	Status    string                `dynamodbav:"status"`
	CompanyID string                `dynamodbav:"company_id"`
	Company   string                `dynamodbav:"company_name,omitempty"`
	AuthorID  string                `dynamodbav:"author_id,omitempty"`
	Products  []proposalProductItem `dynamodbav:"proposal_products,omitempty"`
	CreatedAt string                `dynamodbav:"created_at"`
}

// ProposalDynamoRepository reads proposals. The dashboard writes them; this
// service only consumes them, with company and product lines denormalized on
// the item.
//
// Table requirements:
//   - PK: id (string)

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func fromProposalItem(it proposalItem) entities.Proposal {
	products := make([]entities.ProposalProduct, 0, len(it.Products))
	for _, p := range it.Products {
		products = append(products, entities.ProposalProduct{
			ProductID: p.ProductID,
			Price:     p.Price,
			Product:   fromProductItem(p.Product),
		})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Proposal{
		ID:        it.ID,
		Title:     it.Title,
		Tier:      it.Tier,
		Status:    it.Status,
		Company:   entities.Company{ID: it.CompanyID, Name: it.Company},
		AuthorID:  it.AuthorID,
		Products:  products,
		CreatedAt: createdAt,
	}
}
