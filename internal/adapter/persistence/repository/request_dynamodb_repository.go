package repository

import (
	"context"
	"sort"
	"time"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"
	"manutencao_xpto/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultRequestsTableName = "maintenance_requests"

type requestItem struct {
	ID            string `dynamodbav:"id"`
	Subject       string `dynamodbav:"subject"`
	CreatedBy     string `dynamodbav:"created_by"`
	TargetType    string `dynamodbav:"target_type"`
	EquipmentID   string `dynamodbav:"equipment_id"`
	Equipment     string `dynamodbav:"equipment"`
	Category      string `dynamodbav:"category"`
	RequestDate   string `dynamodbav:"request_date"`
	Type          string `dynamodbav:"maintenance_type"`
	Team          string `dynamodbav:"team"`
	Technician    string `dynamodbav:"technician"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	ScheduledTime string `dynamodbav:"scheduled_time"`
	Duration      string `dynamodbav:"duration"`
	Priority      int    `dynamodbav:"priority"`
	Company       string `dynamodbav:"company"`
	Stage         string `dynamodbav:"stage"`
	Notes         string `dynamodbav:"notes"`
	Instructions  string `dynamodbav:"instructions"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists MaintenanceRequest entities in DynamoDB.
// PK: id.
type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) List(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, pkg.NewRemoteError("listing maintenance requests", err)
	}

	out := make([]entities.MaintenanceRequest, 0, len(items))
	for _, raw := range items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, pkg.NewRemoteError("decoding maintenance request item", err)
		}
		out = append(out, fromRequestItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *RequestDynamoRepository) Insert(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	now := time.Now().UTC()
	req.ID = uuid.NewString()
	req.CreatedAt = now
	req.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("encoding maintenance request item", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("inserting maintenance request", err)
	}
	return req, nil
}

func (r *RequestDynamoRepository) Update(ctx context.Context, id string, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	existing, err := r.getByID(ctx, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if existing.ID == "" {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("maintenance request not found", nil)
	}

	req.ID = id
	req.CreatedAt = existing.CreatedAt
	req.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("encoding maintenance request item", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("updating maintenance request", err)
	}
	return req, nil
}

func (r *RequestDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return pkg.NewRemoteError("deleting maintenance request", err)
	}
	return nil
}

func (r *RequestDynamoRepository) getByID(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("reading maintenance request", err)
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceRequest{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceRequest{}, pkg.NewRemoteError("decoding maintenance request item", err)
	}
	return fromRequestItem(it), nil
}

func toRequestItem(r entities.MaintenanceRequest) requestItem {
	return requestItem{
		ID:            r.ID,
		Subject:       r.Subject,
		CreatedBy:     r.CreatedBy,
		TargetType:    string(r.TargetType),
		EquipmentID:   r.EquipmentID,
		Equipment:     r.Equipment,
		Category:      r.Category,
		RequestDate:   r.RequestDate,
		Type:          string(r.Type),
		Team:          r.Team,
		Technician:    r.Technician,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Duration:      r.Duration,
		Priority:      r.Priority,
		Company:       r.Company,
		Stage:         string(r.Stage),
		Notes:         r.Notes,
		Instructions:  r.Instructions,
		CreatedAt:     formatItemTime(r.CreatedAt),
		UpdatedAt:     formatItemTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		ID:            it.ID,
		Subject:       it.Subject,
		CreatedBy:     it.CreatedBy,
		TargetType:    entities.TargetType(it.TargetType),
		EquipmentID:   it.EquipmentID,
		Equipment:     it.Equipment,
		Category:      it.Category,
		RequestDate:   it.RequestDate,
		Type:          entities.MaintenanceType(it.Type),
		Team:          it.Team,
		Technician:    it.Technician,
		ScheduledDate: it.ScheduledDate,
		ScheduledTime: it.ScheduledTime,
		Duration:      it.Duration,
		Priority:      it.Priority,
		Company:       it.Company,
		Stage:         entities.Stage(it.Stage),
		Notes:         it.Notes,
		Instructions:  it.Instructions,
		CreatedAt:     parseItemTime(it.CreatedAt),
		UpdatedAt:     parseItemTime(it.UpdatedAt),
	}
}
