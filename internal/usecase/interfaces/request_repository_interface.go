package interfaces

import (
	"context"
	"manutencao_xpto/internal/domain/entities"
)

//go:generate mockgen -source=request_repository_interface.go -destination=mocks/request_repository_mock.go -package=mocks

// IRequestRepository abstracts DynamoDB persistence for MaintenanceRequest.
// Same contract as IEquipmentRepository.
type IRequestRepository interface {
	List(ctx context.Context) ([]entities.MaintenanceRequest, error)
	Insert(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	Update(ctx context.Context, id string, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	Delete(ctx context.Context, id string) error
}
