package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsContractIDIndex  = "contract_id-index"
)

type paymentItem struct {
	ID         string `dynamodbav:"id"`
	ContractID string `dynamodbav:"contract_id"`
	Title      string `dynamodbav:"title"`
	Amount     string `dynamodbav:"amount"`
	DueDate    string `dynamodbav:"due_date,omitempty"`
	AltDueDate string `dynamodbav:"alt_due_date,omitempty"`
	OrderIndex int    `dynamodbav:"order_index"`

	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists the payment schedule entries.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) CreateMany(ctx context.Context, payments []entities.Payment) ([]entities.Payment, error) {
	for _, p := range payments {
		av, err := attributevalue.MarshalMap(toPaymentItem(p))
		if err != nil {
			return nil, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].OrderIndex < payments[j].OrderIndex })
	return payments, nil
}

func (r *PaymentDynamoRepository) UpdateProviderResult(ctx context.Context, id string, providerPaymentID string, providerStatus string, providerPayload json.RawMessage) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET provider_payment_id = :pid, provider_status = :pstatus, provider_payload_raw = :praw"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":     &types.AttributeValueMemberS{Value: providerPaymentID},
			":pstatus": &types.AttributeValueMemberS{Value: providerStatus},
			":praw":    &types.AttributeValueMemberS{Value: string(providerPayload)},
		},
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		ContractID:         p.ContractID,
		Title:              p.Title,
		Amount:             p.Amount,
		DueDate:            p.DueDate,
		AltDueDate:         p.AltDueDate,
		OrderIndex:         p.OrderIndex,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payment{
		ID:                 it.ID,
		ContractID:         it.ContractID,
		Title:              it.Title,
		Amount:             it.Amount,
		DueDate:            it.DueDate,
		AltDueDate:         it.AltDueDate,
		OrderIndex:         it.OrderIndex,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderStatus:     it.ProviderStatus,
		ProviderPayloadRaw: json.RawMessage(it.ProviderPayloadRaw),
		CreatedAt:          createdAt,
	}
}
