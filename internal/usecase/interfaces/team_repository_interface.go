package interfaces

import (
	"context"
	"manutencao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=team_repository_interface.go -destination=mocks/team_repository_mock.go -package=mocks

// ITeamRepository abstracts DynamoDB persistence for Team. Same contract as
// IEquipmentRepository.
type ITeamRepository interface {
	List(ctx context.Context) ([]entities.Team, error)
	Insert(ctx context.Context, t entities.Team) (entities.Team, error)
	Update(ctx context.Context, id string, t entities.Team) (entities.Team, error)
	Delete(ctx context.Context, id string) error
}
