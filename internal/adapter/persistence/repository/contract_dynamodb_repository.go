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

const (
	defaultContractsTableName = "contracts"
	contractsProposalIDIndex  = "proposal_id-index"
)

type signerItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

type contractItem struct {
	ID         string `dynamodbav:"id"`
	Title      string `dynamodbav:"title"`
	ProposalID string `dynamodbav:"proposal_id,omitempty"`
	CompanyID  string `dynamodbav:"company_id"`
	ParentID   string `dynamodbav:"parent_id,omitempty"`

	Content string `dynamodbav:"content,omitempty"`
	Status  string `dynamodbav:"status"`

	SignatureStatus     string       `dynamodbav:"signature_status,omitempty"`
	SignatureDocumentID string       `dynamodbav:"signature_document_id,omitempty"`
	SignaturePlatform   string       `dynamodbav:"signature_platform,omitempty"`
	SignatureSigners    []signerItem `dynamodbav:"signature_signers,omitempty"`
	SignatureSentAt     string       `dynamodbav:"signature_sent_at,omitempty"`
	SignatureSignedAt   string       `dynamodbav:"signature_signed_at,omitempty"`
	SignatureResend     bool         `dynamodbav:"signature_resend,omitempty"`

	TotalAmount   float64 `dynamodbav:"total_amount"`
	BillingPeriod string  `dynamodbav:"billing_period"`
	Platform      string  `dynamodbav:"platform"`

	StartDate string `dynamodbav:"start_date,omitempty"`
	DueDate   string `dynamodbav:"due_date,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) UpdateContent(ctx context.Context, id string, content string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #content = :content, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#content": "content",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":content": &types.AttributeValueMemberS{Value: content},
			":now":     &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

func (r *ContractDynamoRepository) UpdateSignatureRequest(ctx context.Context, id string, signers []entities.Signer, platform string, resend bool) error {
	items := make([]signerItem, 0, len(signers))
	for _, s := range signers {
		items = append(items, signerItem{Name: s.Name, Email: s.Email})
	}
	signersAV, err := attributevalue.Marshal(items)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET signature_signers = :signers, signature_platform = :platform, signature_resend = :resend, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":signers":  signersAV,
			":platform": &types.AttributeValueMemberS{Value: platform},
			":resend":   &types.AttributeValueMemberBOOL{Value: resend},
			":now":      &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

func (r *ContractDynamoRepository) UpdateSignatureSent(ctx context.Context, id string, documentID string, sentAt time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET signature_status = :status, signature_document_id = :doc, signature_sent_at = :sent, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.SignatureStatusSent)},
			":doc":    &types.AttributeValueMemberS{Value: documentID},
			":sent":   &types.AttributeValueMemberS{Value: sentAt.UTC().Format(time.RFC3339Nano)},
			":now":    &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

func (r *ContractDynamoRepository) UpdateSignatureStatus(ctx context.Context, id string, status entities.SignatureStatus, signedAt *time.Time) error {
	expr := "SET signature_status = :status, updated_at = :now"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":now":    &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	if signedAt != nil {
		expr += ", signature_signed_at = :signed"
		values[":signed"] = &types.AttributeValueMemberS{Value: signedAt.UTC().Format(time.RFC3339Nano)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: values,
	})
	return err
}

func toContractItem(c entities.Contract) contractItem {
	signers := make([]signerItem, 0, len(c.SignatureSigners))
	for _, s := range c.SignatureSigners {
		signers = append(signers, signerItem{Name: s.Name, Email: s.Email})
	}
	return contractItem{
		ID:                  c.ID,
		Title:               c.Title,
		ProposalID:          c.ProposalID,
		CompanyID:           c.CompanyID,
		ParentID:            c.ParentID,
		Content:             c.Content,
		Status:              string(c.Status),
		SignatureStatus:     string(c.SignatureStatus),
		SignatureDocumentID: c.SignatureDocumentID,
		SignaturePlatform:   c.SignaturePlatform,
		SignatureSigners:    signers,
		SignatureSentAt:     formatTimePtr(c.SignatureSentAt),
		SignatureSignedAt:   formatTimePtr(c.SignatureSignedAt),
		TotalAmount:         c.TotalAmount,
		BillingPeriod:       string(c.BillingPeriod),
		Platform:            c.Platform,
		StartDate:           c.StartDate,
		DueDate:             c.DueDate,
		CreatedAt:           c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	signers := make([]entities.Signer, 0, len(it.SignatureSigners))
	for _, s := range it.SignatureSigners {
		signers = append(signers, entities.Signer{Name: s.Name, Email: s.Email})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Contract{
		ID:                  it.ID,
		Title:               it.Title,
		ProposalID:          it.ProposalID,
		CompanyID:           it.CompanyID,
		ParentID:            it.ParentID,
		Content:             it.Content,
		Status:              entities.ContractStatus(it.Status),
		SignatureStatus:     entities.SignatureStatus(it.SignatureStatus),
		SignatureDocumentID: it.SignatureDocumentID,
		SignaturePlatform:   it.SignaturePlatform,
		SignatureSigners:    signers,
		SignatureSentAt:     parseTimePtr(it.SignatureSentAt),
		SignatureSignedAt:   parseTimePtr(it.SignatureSignedAt),
		TotalAmount:         it.TotalAmount,
		BillingPeriod:       entities.BillingPeriod(it.BillingPeriod),
		Platform:            it.Platform,
		StartDate:           it.StartDate,
		DueDate:             it.DueDate,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
