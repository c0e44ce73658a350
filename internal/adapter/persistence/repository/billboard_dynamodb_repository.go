package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillboardsTableName = "billboards"

type billboardItem struct {
	ID          string  `dynamodbav:"id"`
	SiteName    string  `dynamodbav:"site_name"`
	Location    string  `dynamodbav:"location,omitempty"`
	Height      float64 `dynamodbav:"height"`
	Width       float64 `dynamodbav:"width"`
	MonthlyRate string  `dynamodbav:"monthly_rate"`
	Status      string  `dynamodbav:"status"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// BillboardDynamoRepository persists Billboard entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BillboardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillboardRepository = (*BillboardDynamoRepository)(nil)

func NewBillboardDynamoRepository(ddb *dynamodb.Client) *BillboardDynamoRepository {
	return &BillboardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLBOARDS_TABLE", defaultBillboardsTableName),
	}
}

func (r *BillboardDynamoRepository) Create(ctx context.Context, b entities.Billboard) (entities.Billboard, error) {
	av, err := attributevalue.MarshalMap(toBillboardItem(b))
	if err != nil {
		return entities.Billboard{}, err
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
		return entities.Billboard{}, err
	}
	return b, nil
}

func (r *BillboardDynamoRepository) GetByID(ctx context.Context, id string) (entities.Billboard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Billboard{}, err
	}
	if len(out.Item) == 0 {
		return entities.Billboard{}, nil
	}

	var it billboardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Billboard{}, err
	}
	return fromBillboardItem(it), nil
}

func (r *BillboardDynamoRepository) List(ctx context.Context) ([]entities.Billboard, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	billboards := make([]entities.Billboard, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billboardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		billboards = append(billboards, fromBillboardItem(it))
	}
	return billboards, nil
}

func (r *BillboardDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BillboardStatus) (entities.Billboard, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BillboardDynamoRepository) UpdateRateByID(ctx context.Context, id string, monthlyRate float64) (entities.Billboard, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #monthly_rate = :monthly_rate, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":monthly_rate": &types.AttributeValueMemberN{Value: floatToString(monthlyRate)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#monthly_rate": "monthly_rate",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BillboardDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Billboard, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Billboard{}, nil
		}
		return entities.Billboard{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Billboard{}, nil
	}
	var it billboardItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Billboard{}, err
	}
	return fromBillboardItem(it), nil
}

func toBillboardItem(b entities.Billboard) billboardItem {
	return billboardItem{
		ID:          b.ID,
		SiteName:    b.SiteName,
		Location:    b.Location,
		Height:      b.Specs.Height,
		Width:       b.Specs.Width,
		MonthlyRate: floatToString(b.MonthlyRate),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillboardItem(it billboardItem) entities.Billboard {
	rate, _ := strconv.ParseFloat(it.MonthlyRate, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Billboard{
		ID:          it.ID,
		SiteName:    it.SiteName,
		Location:    it.Location,
		Specs:       entities.LineItemSpecs{Height: it.Height, Width: it.Width},
		MonthlyRate: rate,
		Status:      entities.BillboardStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
