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

const defaultEquipmentTableName = "equipment"

type equipmentItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	SerialNumber   string `dynamodbav:"serial_number"`
	Category       string `dynamodbav:"category"`
	Department     string `dynamodbav:"department"`
	Employee       string `dynamodbav:"employee"`
	Location       string `dynamodbav:"location"`
	Team           string `dynamodbav:"team"`
	Technician     string `dynamodbav:"technician"`
	WorkCenterID   string `dynamodbav:"work_center_id"`
	PurchaseDate   string `dynamodbav:"purchase_date"`
	WarrantyDate   string `dynamodbav:"warranty_date"`
	AssignmentDate string `dynamodbav:"assignment_date"`
	ScrapDate      string `dynamodbav:"scrap_date"`
	Status         string `dynamodbav:"status"`
	Notes          string `dynamodbav:"notes"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EquipmentDynamoRepository persists Equipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the whole table; the fleet of tracked assets is small enough
// that a scan per session load is acceptable.
type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

func (r *EquipmentDynamoRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, pkg.NewRemoteError("listing equipment", err)
	}

	out := make([]entities.Equipment, 0, len(items))
	for _, raw := range items {
		var it equipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, pkg.NewRemoteError("decoding equipment item", err)
		}
		out = append(out, fromEquipmentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *EquipmentDynamoRepository) Insert(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, pkg.NewRemoteError("encoding equipment item", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Equipment{}, pkg.NewRemoteError("inserting equipment", err)
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Update(ctx context.Context, id string, e entities.Equipment) (entities.Equipment, error) {
	existing, err := r.getByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if existing.ID == "" {
		return entities.Equipment{}, pkg.NewRemoteError("equipment not found", nil)
	}

	e.ID = id
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, pkg.NewRemoteError("encoding equipment item", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Equipment{}, pkg.NewRemoteError("updating equipment", err)
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return pkg.NewRemoteError("deleting equipment", err)
	}
	return nil
}

func (r *EquipmentDynamoRepository) getByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Equipment{}, pkg.NewRemoteError("reading equipment", err)
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}
	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, pkg.NewRemoteError("decoding equipment item", err)
	}
	return fromEquipmentItem(it), nil
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:             e.ID,
		Name:           e.Name,
		SerialNumber:   e.SerialNumber,
		Category:       e.Category,
		Department:     e.Department,
		Employee:       e.Employee,
		Location:       e.Location,
		Team:           e.Team,
		Technician:     e.Technician,
		WorkCenterID:   e.WorkCenterID,
		PurchaseDate:   e.PurchaseDate,
		WarrantyDate:   e.WarrantyDate,
		AssignmentDate: e.AssignmentDate,
		ScrapDate:      e.ScrapDate,
		Status:         string(e.Status),
		Notes:          e.Notes,
		CreatedAt:      formatItemTime(e.CreatedAt),
		UpdatedAt:      formatItemTime(e.UpdatedAt),
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	return entities.Equipment{
		ID:             it.ID,
		Name:           it.Name,
		SerialNumber:   it.SerialNumber,
		Category:       it.Category,
		Department:     it.Department,
		Employee:       it.Employee,
		Location:       it.Location,
		Team:           it.Team,
		Technician:     it.Technician,
		WorkCenterID:   it.WorkCenterID,
		PurchaseDate:   it.PurchaseDate,
		WarrantyDate:   it.WarrantyDate,
		AssignmentDate: it.AssignmentDate,
		ScrapDate:      it.ScrapDate,
		Status:         entities.EquipmentStatus(it.Status),
		Notes:          it.Notes,
		CreatedAt:      parseItemTime(it.CreatedAt),
		UpdatedAt:      parseItemTime(it.UpdatedAt),
	}
}
