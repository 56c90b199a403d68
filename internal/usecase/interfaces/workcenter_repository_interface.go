package interfaces

import (
	"context"
	"manutencao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=workcenter_repository_interface.go -destination=mocks/workcenter_repository_mock.go -package=mocks

// IWorkCenterRepository abstracts DynamoDB persistence for WorkCenter.
// Work centers are reference data: the engine only lists them, the seeder
// inserts them.
type IWorkCenterRepository interface {
	List(ctx context.Context) ([]entities.WorkCenter, error)
	Insert(ctx context.Context, wc entities.WorkCenter) (entities.WorkCenter, error)
}
