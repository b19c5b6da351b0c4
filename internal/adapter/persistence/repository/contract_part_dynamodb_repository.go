package repository

import (
	"context"
	"sort"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractPartsTableName     = "contract_parts"
	defaultContractPartLinksTableName = "contract_part_links"
	partLinksContractIDIndex          = "contract_id-index"
)

type contractPartItem struct {
	ID      string `dynamodbav:"id"`
	Title   string `dynamodbav:"title"`
	Content string `dynamodbav:"content"`
}

type contractPartLinkItem struct {
	ID            string `dynamodbav:"id"`
	ContractID    string `dynamodbav:"contract_id"`
	PartID        string `dynamodbav:"part_id"`
	OrderIndex    int    `dynamodbav:"order_index"`
	IsIncluded    bool   `dynamodbav:"is_included"`
	CustomContent string `dynamodbav:"custom_content,omitempty"`
}

// ContractPartDynamoRepository resolves the ordered, included template parts
// of a contract. The junction carries ordering, inclusion and the optional
// custom-content override; the override replaces the part template entirely.
//
// Table requirements:
//   - contract_parts: PK id (string)
//   - contract_part_links: PK id, GSI contract_id-index (PK: contract_id)

type ContractPartDynamoRepository struct {
	ddb        *dynamodb.Client
	partsTable string
	linksTable string
}

var _ interfaces.IContractPartRepository = (*ContractPartDynamoRepository)(nil)

func NewContractPartDynamoRepository(ddb *dynamodb.Client) *ContractPartDynamoRepository {
	return &ContractPartDynamoRepository{
		ddb:        ddb,
		partsTable: getenvDefault("CONTRACT_PARTS_TABLE", defaultContractPartsTableName),
		linksTable: getenvDefault("CONTRACT_PART_LINKS_TABLE", defaultContractPartLinksTableName),
	}
}

func (r *ContractPartDynamoRepository) ListIncludedByContractID(ctx context.Context, contractID string) ([]entities.ContractPartView, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linksTable),
		IndexName:              aws.String(partLinksContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	links := make([]contractPartLinkItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var link contractPartLinkItem
		if err := attributevalue.UnmarshalMap(raw, &link); err != nil {
			return nil, err
		}
		if !link.IsIncluded {
			continue
		}
		links = append(links, link)
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].OrderIndex < links[j].OrderIndex })

	views := make([]entities.ContractPartView, 0, len(links))
	for _, link := range links {
		part, err := r.getPart(ctx, link.PartID)
		if err != nil {
			return nil, err
		}
		if part.ID == "" {
			continue
		}
		content := part.Content
		if link.CustomContent != "" {
			content = link.CustomContent
		}
		views = append(views, entities.ContractPartView{
			Title:      part.Title,
			Content:    content,
			OrderIndex: link.OrderIndex,
		})
	}
	return views, nil
}

func (r *ContractPartDynamoRepository) getPart(ctx context.Context, id string) (contractPartItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.partsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return contractPartItem{}, err
	}
	if len(out.Item) == 0 {
		return contractPartItem{}, nil
	}

	var it contractPartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return contractPartItem{}, err
	}
	return it, nil
}
