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

const (
	defaultAssignmentsTableName = "service_assignments"
	assignmentsJobOrderIDIndex  = "job_order_id-index"
)

type serviceAssignmentItem struct {
	ID          string `dynamodbav:"id"`
	JobOrderID  string `dynamodbav:"job_order_id"`
	SiteName    string `dynamodbav:"site_name"`
	CrewName    string `dynamodbav:"crew_name"`
	ServiceType string `dynamodbav:"service_type"`
	ServiceDate string `dynamodbav:"service_date"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceAssignmentDynamoRepository persists ServiceAssignment entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_order_id-index (PK: job_order_id)

type ServiceAssignmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceAssignmentRepository = (*ServiceAssignmentDynamoRepository)(nil)

func NewServiceAssignmentDynamoRepository(ddb *dynamodb.Client) *ServiceAssignmentDynamoRepository {
	return &ServiceAssignmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
	}
}

func (r *ServiceAssignmentDynamoRepository) Create(ctx context.Context, a entities.ServiceAssignment) (entities.ServiceAssignment, error) {
	av, err := attributevalue.MarshalMap(toServiceAssignmentItem(a))
	if err != nil {
		return entities.ServiceAssignment{}, err
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
		return entities.ServiceAssignment{}, err
	}
	return a, nil
}

func (r *ServiceAssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceAssignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceAssignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceAssignment{}, nil
	}

	var it serviceAssignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceAssignment{}, err
	}
	return fromServiceAssignmentItem(it), nil
}

func (r *ServiceAssignmentDynamoRepository) ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.ServiceAssignment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assignmentsJobOrderIDIndex),
		KeyConditionExpression: aws.String("job_order_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	assignments := make([]entities.ServiceAssignment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceAssignmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		assignments = append(assignments, fromServiceAssignmentItem(it))
	}
	return assignments, nil
}

func (r *ServiceAssignmentDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.AssignmentStatus) (entities.ServiceAssignment, error) {
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
			return entities.ServiceAssignment{}, nil
		}
		return entities.ServiceAssignment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceAssignment{}, nil
	}
	var it serviceAssignmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceAssignment{}, err
	}
	return fromServiceAssignmentItem(it), nil
}

func toServiceAssignmentItem(a entities.ServiceAssignment) serviceAssignmentItem {
	return serviceAssignmentItem{
		ID:          a.ID,
		JobOrderID:  a.JobOrderID,
		SiteName:    a.SiteName,
		CrewName:    a.CrewName,
		ServiceType: string(a.ServiceType),
		ServiceDate: formatDate(a.ServiceDate),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceAssignmentItem(it serviceAssignmentItem) entities.ServiceAssignment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceAssignment{
		ID:          it.ID,
		JobOrderID:  it.JobOrderID,
		SiteName:    it.SiteName,
		CrewName:    it.CrewName,
		ServiceType: entities.ServiceType(it.ServiceType),
		ServiceDate: parseDate(it.ServiceDate),
		Status:      entities.AssignmentStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
