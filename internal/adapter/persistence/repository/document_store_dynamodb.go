package repository

import (
	"context"
	"time"

	"foodcoop_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultDocumentsTableName = "documents"
	documentsContainerIndex   = "container_id-name-index"
)

type documentItem struct {
	ID          string `dynamodbav:"id"`
	ContainerID string `dynamodbav:"container_id"`
	Name        string `dynamodbav:"name"`
	Body        string `dynamodbav:"body"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// DocumentStoreDynamoRepository implements the folder-and-file document
// store on DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: container_id-name-index (PK: container_id, SK: name)
//
// Each item carries the whole JSON body as text. Per-item reads and writes
// are atomic, which is all the store promises; there is no multi-document
// transaction, and callers serialize their own read-modify-write cycles.
// Name lookups resolve through the GSI and then re-read the base table by
// id, since GSIs are eventually consistent.

type DocumentStoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentStore = (*DocumentStoreDynamoRepository)(nil)

func NewDocumentStoreDynamoRepository(ddb *dynamodb.Client) *DocumentStoreDynamoRepository {
	return &DocumentStoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

// Read returns the document body, or nil when no document has this id.
func (r *DocumentStoreDynamoRepository) Read(ctx context.Context, id string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Body), nil
}

// Write replaces the body of an existing document. Container and name are
// immutable once created.
func (r *DocumentStoreDynamoRepository) Write(ctx context.Context, id string, body []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #body = :body, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#body":       "body",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":body":       &types.AttributeValueMemberS{Value: string(body)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

// FindByName resolves a document id by (name, container); empty string when
// absent.
func (r *DocumentStoreDynamoRepository) FindByName(ctx context.Context, name, containerID string) (string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsContainerIndex),
		KeyConditionExpression: aws.String("container_id = :cid AND #name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":  &types.AttributeValueMemberS{Value: containerID},
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.ID, nil
}

// Create stores a new document under the container and returns its id.
func (r *DocumentStoreDynamoRepository) Create(ctx context.Context, name, containerID string, body []byte) (string, error) {
	it := documentItem{
		ID:          uuid.NewString(),
		ContainerID: containerID,
		Name:        name,
		Body:        string(body),
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
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
		return "", err
	}
	return it.ID, nil
}
