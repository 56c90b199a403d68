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

const defaultTeamsTableName = "teams"

type teamItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	Members        []string `dynamodbav:"members"`
	Specialization string   `dynamodbav:"specialization"`
	Company        string   `dynamodbav:"company"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// TeamDynamoRepository persists Team entities in DynamoDB. PK: id.
type TeamDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITeamRepository = (*TeamDynamoRepository)(nil)

func NewTeamDynamoRepository(ddb *dynamodb.Client) *TeamDynamoRepository {
	return &TeamDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TEAMS_TABLE", defaultTeamsTableName),
	}
}

func (r *TeamDynamoRepository) List(ctx context.Context) ([]entities.Team, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, pkg.NewRemoteError("listing teams", err)
	}

	out := make([]entities.Team, 0, len(items))
	for _, raw := range items {
		var it teamItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, pkg.NewRemoteError("decoding team item", err)
		}
		out = append(out, fromTeamItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *TeamDynamoRepository) Insert(ctx context.Context, t entities.Team) (entities.Team, error) {
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toTeamItem(t))
	if err != nil {
		return entities.Team{}, pkg.NewRemoteError("encoding team item", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Team{}, pkg.NewRemoteError("inserting team", err)
	}
	return t, nil
}

func (r *TeamDynamoRepository) Update(ctx context.Context, id string, t entities.Team) (entities.Team, error) {
	existing, err := r.getByID(ctx, id)
	if err != nil {
		return entities.Team{}, err
	}
	if existing.ID == "" {
		return entities.Team{}, pkg.NewRemoteError("team not found", nil)
	}

	t.ID = id
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toTeamItem(t))
	if err != nil {
		return entities.Team{}, pkg.NewRemoteError("encoding team item", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Team{}, pkg.NewRemoteError("updating team", err)
	}
	return t, nil
}

func (r *TeamDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return pkg.NewRemoteError("deleting team", err)
	}
	return nil
}

func (r *TeamDynamoRepository) getByID(ctx context.Context, id string) (entities.Team, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Team{}, pkg.NewRemoteError("reading team", err)
	}
	if len(out.Item) == 0 {
		return entities.Team{}, nil
	}
	var it teamItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Team{}, pkg.NewRemoteError("decoding team item", err)
	}
	return fromTeamItem(it), nil
}

func toTeamItem(t entities.Team) teamItem {
	return teamItem{
		ID:             t.ID,
		Name:           t.Name,
		Members:        t.Members,
		Specialization: t.Specialization,
		Company:        t.Company,
		CreatedAt:      formatItemTime(t.CreatedAt),
		UpdatedAt:      formatItemTime(t.UpdatedAt),
	}
}

func fromTeamItem(it teamItem) entities.Team {
	return entities.Team{
		ID:             it.ID,
		Name:           it.Name,
		Members:        it.Members,
		Specialization: it.Specialization,
		Company:        it.Company,
		CreatedAt:      parseItemTime(it.CreatedAt),
		UpdatedAt:      parseItemTime(it.UpdatedAt),
	}
}
