package repository

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// JoinRelation declares a junction table once instead of scattering
// stringly-typed attribute names through query-building code.
//
// Table layout:
//   - PK: id
//   - GSI (SourceIndex): SourceKey
//   - item attributes: id, SourceKey, TargetKey

type JoinRelation struct {
	Table       string
	SourceKey   string
	TargetKey   string
	SourceIndex string
}

// linkRecords inserts one junction item per target id.
func linkRecords(ctx context.Context, ddb *dynamodb.Client, rel JoinRelation, sourceID string, targetIDs []string) error {
	for _, targetID := range targetIDs {
		_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(rel.Table),
			Item: map[string]types.AttributeValue{
				"id":          &types.AttributeValueMemberS{Value: uuid.NewString()},
				rel.SourceKey: &types.AttributeValueMemberS{Value: sourceID},
				rel.TargetKey: &types.AttributeValueMemberS{Value: targetID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// listTargetIDs resolves the target side of a junction for one source id,
// preserving item order as returned by the index.
func listTargetIDs(ctx context.Context, ddb *dynamodb.Client, rel JoinRelation, sourceID string) ([]string, error) {
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(rel.Table),
		IndexName:              aws.String(rel.SourceIndex),
		KeyConditionExpression: aws.String("#src = :sid"),
		ExpressionAttributeNames: map[string]string{
			"#src": rel.SourceKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sourceID},
		},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		if v, ok := item[rel.TargetKey].(*types.AttributeValueMemberS); ok {
			ids = append(ids, v.Value)
		}
	}
	return ids, nil
}
