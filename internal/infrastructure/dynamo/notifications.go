package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chatwith-notifications/internal/domain"
)

// NotificationRepo provides typed DynamoDB operations for the notifications
// table. Record ids are minted here; nothing outside the persistence layer
// assigns them.
type NotificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationRepo(client *dynamodb.Client, tableName string) *NotificationRepo {
	return &NotificationRepo{client: client, tableName: tableName}
}

// ListParams restricts a List call. Status is an exact-match filter; empty
// means no status filtering.
type ListParams struct {
	Limit  int
	Offset int
	Status string
}

// Insert assigns a fresh id, writes the record, and reads the stored row
// back. A successful write that cannot be read back is reported as
// domain.ErrEmptyInsert.
func (r *NotificationRepo) Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.NotificationID = newID()
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return nil, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            strKey("notification_id", n.NotificationID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, domain.ErrEmptyInsert
	}
	var stored domain.Notification
	if err := attributevalue.UnmarshalMap(out.Item, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// List returns the page [offset, offset+limit) of notifications ordered by
// created_at descending, plus the total number of matching rows. The scan
// follows LastEvaluatedKey until the table is exhausted.
func (r *NotificationRepo) List(ctx context.Context, p ListParams) ([]domain.Notification, int, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if p.Status != "" {
		// "status" is a DynamoDB reserved word, hence the name placeholder.
		input.FilterExpression = aws.String("#st = :status")
		input.ExpressionAttributeNames = map[string]string{"#st": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: p.Status},
		}
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	var all []domain.Notification
	if err := attributevalue.UnmarshalListOfMaps(items, &all); err != nil {
		return nil, 0, err
	}

	sortByCreatedAtDesc(all)
	return pageWindow(all, p.Offset, p.Limit), len(all), nil
}
