package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "cost_estimates"

type costEstimateItem struct {
	ID            string `dynamodbav:"id"`
	BookingID     string `dynamodbav:"booking_id,omitempty"`
	ClientName    string `dynamodbav:"client_name,omitempty"`
	LineItemsJSON string `dynamodbav:"line_items"`
	TotalAmount   string `dynamodbav:"total_amount"`
	DurationDays  int    `dynamodbav:"duration_days"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	EndDate       string `dynamodbav:"end_date,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CostEstimateDynamoRepository persists CostEstimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are stored as one JSON document attribute: the whole list is
// always read and written together, so item-level attribute access buys
// nothing.

type CostEstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostEstimateRepository = (*CostEstimateDynamoRepository)(nil)

func NewCostEstimateDynamoRepository(ddb *dynamodb.Client) *CostEstimateDynamoRepository {
	return &CostEstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *CostEstimateDynamoRepository) Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
	it, err := toCostEstimateItem(e)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostEstimate{}, err
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
		return entities.CostEstimate{}, err
	}
	return e, nil
}

func (r *CostEstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostEstimate{}, nil
	}

	var it costEstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostEstimate{}, err
	}
	return fromCostEstimateItem(it), nil
}

func (r *CostEstimateDynamoRepository) ListByStatus(ctx context.Context, status entities.CostEstimateStatus) ([]entities.CostEstimate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	estimates := make([]entities.CostEstimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costEstimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		estimates = append(estimates, fromCostEstimateItem(it))
	}
	return estimates, nil
}

// UpdateFieldsByID applies a sanitized partial update. Supported field
// values: line item slices, numbers, strings, and time.Time (dates are
// formatted, never dropped).
func (r *CostEstimateDynamoRepository) UpdateFieldsByID(ctx context.Context, id string, fields map[string]any) (entities.CostEstimate, error) {
	cleaned := sanitizePartialUpdate(fields)
	if len(cleaned) == 0 {
		return r.GetByID(ctx, id)
	}

	// Stable attribute order keeps the expression deterministic for tests
	// and log diffing.
	keys := make([]string, 0, len(cleaned))
	for k := range cleaned {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		for i, k := range keys {
			av, err := fieldToAttributeValue(cleaned[k])
			if err != nil {
				return "", nil, nil, err
			}
			ph := fmt.Sprintf(":v%d", i)
			nameph := fmt.Sprintf("#f%d", i)
			expr += fmt.Sprintf(", %s = %s", nameph, ph)
			vals[ph] = av
			names[nameph] = k
		}
		return expr, vals, names, nil
	})
}

func (r *CostEstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.CostEstimateStatus) (entities.CostEstimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *CostEstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.CostEstimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names, err := build(now)
	if err != nil {
		return entities.CostEstimate{}, err
	}

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
			return entities.CostEstimate{}, nil
		}
		return entities.CostEstimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CostEstimate{}, nil
	}
	var it costEstimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CostEstimate{}, err
	}
	return fromCostEstimateItem(it), nil
}

func fieldToAttributeValue(v any) (types.AttributeValue, error) {
	switch val := v.(type) {
	case []entities.LineItem:
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberS{Value: string(b)}, nil
	case time.Time:
		return &types.AttributeValueMemberS{Value: val.UTC().Format(time.RFC3339Nano)}, nil
	case string:
		return &types.AttributeValueMemberS{Value: val}, nil
	case float64:
		return &types.AttributeValueMemberN{Value: floatToString(val)}, nil
	case int:
		return &types.AttributeValueMemberN{Value: strconv.Itoa(val)}, nil
	default:
		return nil, fmt.Errorf("unsupported partial update value %T", v)
	}
}

func toCostEstimateItem(e entities.CostEstimate) (costEstimateItem, error) {
	lineItems, err := json.Marshal(e.LineItems)
	if err != nil {
		return costEstimateItem{}, err
	}
	return costEstimateItem{
		ID:            e.ID,
		BookingID:     e.BookingID,
		ClientName:    e.ClientName,
		LineItemsJSON: string(lineItems),
		TotalAmount:   floatToString(e.TotalAmount),
		DurationDays:  e.DurationDays,
		StartDate:     formatDate(e.StartDate),
		EndDate:       formatDate(e.EndDate),
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCostEstimateItem(it costEstimateItem) entities.CostEstimate {
	var lineItems []entities.LineItem
	_ = json.Unmarshal([]byte(it.LineItemsJSON), &lineItems)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CostEstimate{
		ID:           it.ID,
		BookingID:    it.BookingID,
		ClientName:   it.ClientName,
		LineItems:    lineItems,
		TotalAmount:  total,
		DurationDays: it.DurationDays,
		StartDate:    parseDate(it.StartDate),
		EndDate:      parseDate(it.EndDate),
		Status:       entities.CostEstimateStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
