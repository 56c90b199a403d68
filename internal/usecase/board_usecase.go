package usecase

import (
	"context"

	"manutencao_xpto/internal/domain/entities"
)

// DropResult describes a finished drag on the kanban board: the column the
// card left, the column it landed in (empty when dropped outside any
// column), and the dragged request.
type DropResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	RequestID   string `json:"request_id"`
}

// BoardColumn is one kanban column with its cards.
type BoardColumn struct {
	Stage    entities.Stage                `json:"stage"`
	Requests []entities.MaintenanceRequest `json:"requests"`
}

// IBoardUseCase turns board interactions into lifecycle calls.
type IBoardUseCase interface {
	HandleDrop(ctx context.Context, drop DropResult) (entities.MaintenanceRequest, bool, error)
	Columns() []BoardColumn
}

type BoardUseCase struct {
	store     IMaintenanceStore
	lifecycle ILifecycleUseCase
}

var _ IBoardUseCase = (*BoardUseCase)(nil)

func NewBoardUseCase(store IMaintenanceStore, lifecycle ILifecycleUseCase) *BoardUseCase {
	return &BoardUseCase{store: store, lifecycle: lifecycle}
}

// HandleDrop applies a drag result. Drops without a destination and drops
// within the same column change nothing — there is no persisted display
// order, so in-column reordering is purely cosmetic. A drop into another
// column moves the request to that column's stage. moved reports whether a
// stage change was persisted.
func (u *BoardUseCase) HandleDrop(ctx context.Context, drop DropResult) (req entities.MaintenanceRequest, moved bool, err error) {
	if drop.Destination == "" || drop.Destination == drop.Source {
		current, ok := u.store.RequestByID(drop.RequestID)
		if !ok {
			return entities.MaintenanceRequest{}, false, ErrRequestMissing
		}
		return current, false, nil
	}

	updated, err := u.lifecycle.MoveRequestToStage(ctx, drop.RequestID, entities.Stage(drop.Destination))
	if err != nil {
		return entities.MaintenanceRequest{}, false, err
	}
	return updated, true, nil
}

// Columns groups the current requests by stage in fixed column order.
func (u *BoardUseCase) Columns() []BoardColumn {
	requests := u.store.Requests()
	columns := make([]BoardColumn, 0, len(entities.Stages))
	for _, stage := range entities.Stages {
		col := BoardColumn{Stage: stage, Requests: []entities.MaintenanceRequest{}}
		for _, r := range requests {
			if r.Stage == stage {
				col.Requests = append(col.Requests, r)
			}
		}
		columns = append(columns, col)
	}
	return columns
}
