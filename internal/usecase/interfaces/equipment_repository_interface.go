package interfaces

import (
	"context"
	"manutencao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=equipment_repository_interface.go -destination=mocks/equipment_repository_mock.go -package=mocks

// IEquipmentRepository abstracts DynamoDB persistence for Equipment.
//
// Contract shared by all entity repositories (the persistence collaborator):
//   - List returns every record ordered by creation time, newest first.
//   - Insert assigns the identifier and timestamps and returns the created
//     record.
//   - Update replaces the record with the given id and returns the result.
//   - Every failure (I/O, auth, constraint) is reported as *pkg.RemoteError.
type IEquipmentRepository interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	Insert(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Update(ctx context.Context, id string, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
}
