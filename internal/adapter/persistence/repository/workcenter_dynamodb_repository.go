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
	"github.com/google/uuid"
)

const defaultWorkCentersTableName = "work_centers"

type workCenterItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Code        string  `dynamodbav:"code"`
	Tag         string  `dynamodbav:"tag"`
	Alternative string  `dynamodbav:"alternative"`
	CostPerHour float64 `dynamodbav:"cost"`
	Capacity    int     `dynamodbav:"capacity"`
	Efficiency  int     `dynamodbav:"efficiency"`
	OEETarget   int     `dynamodbav:"oee_target"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// WorkCenterDynamoRepository persists WorkCenter reference data. PK: id.
// Only List and Insert exist; work centers are read-only for the engine and
// written by the seeder.
type WorkCenterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkCenterRepository = (*WorkCenterDynamoRepository)(nil)

func NewWorkCenterDynamoRepository(ddb *dynamodb.Client) *WorkCenterDynamoRepository {
	return &WorkCenterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_CENTERS_TABLE", defaultWorkCentersTableName),
	}
}

func (r *WorkCenterDynamoRepository) List(ctx context.Context) ([]entities.WorkCenter, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, pkg.NewRemoteError("listing work centers", err)
	}

	out := make([]entities.WorkCenter, 0, len(items))
	for _, raw := range items {
		var it workCenterItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, pkg.NewRemoteError("decoding work center item", err)
		}
		out = append(out, fromWorkCenterItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *WorkCenterDynamoRepository) Insert(ctx context.Context, wc entities.WorkCenter) (entities.WorkCenter, error) {
	now := time.Now().UTC()
	wc.ID = uuid.NewString()
	wc.CreatedAt = now
	wc.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toWorkCenterItem(wc))
	if err != nil {
		return entities.WorkCenter{}, pkg.NewRemoteError("encoding work center item", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.WorkCenter{}, pkg.NewRemoteError("inserting work center", err)
	}
	return wc, nil
}

func toWorkCenterItem(wc entities.WorkCenter) workCenterItem {
	return workCenterItem{
		ID:          wc.ID,
		Name:        wc.Name,
		Code:        wc.Code,
		Tag:         wc.Tag,
		Alternative: wc.Alternative,
		CostPerHour: wc.CostPerHour,
		Capacity:    wc.Capacity,
		Efficiency:  wc.Efficiency,
		OEETarget:   wc.OEETarget,
		CreatedAt:   formatItemTime(wc.CreatedAt),
		UpdatedAt:   formatItemTime(wc.UpdatedAt),
	}
}

func fromWorkCenterItem(it workCenterItem) entities.WorkCenter {
	return entities.WorkCenter{
		ID:          it.ID,
		Name:        it.Name,
		Code:        it.Code,
		Tag:         it.Tag,
		Alternative: it.Alternative,
		CostPerHour: it.CostPerHour,
		Capacity:    it.Capacity,
		Efficiency:  it.Efficiency,
		OEETarget:   it.OEETarget,
		CreatedAt:   parseItemTime(it.CreatedAt),
		UpdatedAt:   parseItemTime(it.UpdatedAt),
	}
}
