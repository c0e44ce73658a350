package repository

import (
	"context"
	"errors"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobOrdersTableName = "job_orders"

type jobOrderItem struct {
	ID             string   `dynamodbav:"id"`
	QuotationID    string   `dynamodbav:"quotation_id"`
	ClientName     string   `dynamodbav:"client_name,omitempty"`
	SiteNames      []string `dynamodbav:"site_names,omitempty"`
	ScheduledStart string   `dynamodbav:"scheduled_start,omitempty"`
	ScheduledEnd   string   `dynamodbav:"scheduled_end,omitempty"`
	Status         string   `dynamodbav:"status"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// JobOrderDynamoRepository persists JobOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type JobOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobOrderRepository = (*JobOrderDynamoRepository)(nil)

func NewJobOrderDynamoRepository(ddb *dynamodb.Client) *JobOrderDynamoRepository {
	return &JobOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ORDERS_TABLE", defaultJobOrdersTableName),
	}
}

func (r *JobOrderDynamoRepository) Create(ctx context.Context, j entities.JobOrder) (entities.JobOrder, error) {
	av, err := attributevalue.MarshalMap(toJobOrderItem(j))
	if err != nil {
		return entities.JobOrder{}, err
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
		return entities.JobOrder{}, err
	}
	return j, nil
}

func (r *JobOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobOrder{}, nil
	}

	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func (r *JobOrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.JobOrderStatus) (entities.JobOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.JobOrder{}, nil
		}
		return entities.JobOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.JobOrder{}, nil
	}
	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func toJobOrderItem(j entities.JobOrder) jobOrderItem {
	return jobOrderItem{
		ID:             j.ID,
		QuotationID:    j.QuotationID,
		ClientName:     j.ClientName,
		SiteNames:      j.SiteNames,
		ScheduledStart: formatDate(j.ScheduledStart),
		ScheduledEnd:   formatDate(j.ScheduledEnd),
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobOrderItem(it jobOrderItem) entities.JobOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.JobOrder{
		ID:             it.ID,
		QuotationID:    it.QuotationID,
		ClientName:     it.ClientName,
		SiteNames:      it.SiteNames,
		ScheduledStart: parseDate(it.ScheduledStart),
		ScheduledEnd:   parseDate(it.ScheduledEnd),
		Status:         entities.JobOrderStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
