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
	defaultMilestonesTableName = "milestones"
	milestonesCompanyIDIndex   = "company_id-index"
)

type milestoneItem struct {
	ID          string `dynamodbav:"id"`
	CompanyID   string `dynamodbav:"company_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	IsSelected  bool   `dynamodbav:"is_selected"`
	OrderIndex  int    `dynamodbav:"order_index"`
}

// MilestoneDynamoRepository reads milestones scoped to a company.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

// ListSelectedByCompanyID returns the selected milestones of a company in
// order_index order, truncated to limit. Filtering happens client-side so
// the limit applies after selection, not before.
func (r *MilestoneDynamoRepository) ListSelectedByCompanyID(ctx context.Context, companyID string, limit int) ([]entities.Milestone, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(milestonesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	milestones := make([]entities.Milestone, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if !it.IsSelected {
			continue
		}
		milestones = append(milestones, entities.Milestone{
			ID:          it.ID,
			CompanyID:   it.CompanyID,
			Title:       it.Title,
			Description: it.Description,
			IsSelected:  it.IsSelected,
			OrderIndex:  it.OrderIndex,
		})
	}
	sort.SliceStable(milestones, func(i, j int) bool { return milestones[i].OrderIndex < milestones[j].OrderIndex })

	if limit > 0 && len(milestones) > limit {
		milestones = milestones[:limit]
	}
	return milestones, nil
}
