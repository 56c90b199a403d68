package usecase

import (
	"context"
	"errors"
	"testing"

	"manutencao_xpto/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func newBoardFixture(t *testing.T, requests []entities.MaintenanceRequest) (storeMocks, *BoardUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mocks := newStoreMocks(ctrl)
	store := mocks.newStore()
	mocks.expectLoad(nil, nil, requests, nil)
	if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return mocks, NewBoardUseCase(store, NewLifecycleUseCase(store))
}

func TestBoardUseCase_HandleDrop(t *testing.T) {
	t.Run("cross column drop moves the request", func(t *testing.T) {
		mocks, uc := newBoardFixture(t, []entities.MaintenanceRequest{{ID: "r1", Stage: entities.StageNew}})

		mocks.requests.EXPECT().Update(gomock.Any(), "r1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
				return r, nil
			},
		)

		req, moved, err := uc.HandleDrop(context.Background(), DropResult{
			Source: "New", Destination: "In Progress", RequestID: "r1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !moved || req.Stage != entities.StageInProgress {
			t.Fatalf("expected move to In Progress, got moved=%v stage=%q", moved, req.Stage)
		}
	})

	t.Run("drop outside any column is a no-op", func(t *testing.T) {
		_, uc := newBoardFixture(t, []entities.MaintenanceRequest{{ID: "r1", Stage: entities.StageNew}})

		req, moved, err := uc.HandleDrop(context.Background(), DropResult{Source: "New", RequestID: "r1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || req.Stage != entities.StageNew {
			t.Fatalf("expected no-op, got moved=%v stage=%q", moved, req.Stage)
		}
	})

	t.Run("reorder within a column is a no-op", func(t *testing.T) {
		_, uc := newBoardFixture(t, []entities.MaintenanceRequest{{ID: "r1", Stage: entities.StageNew}})

		_, moved, err := uc.HandleDrop(context.Background(), DropResult{
			Source: "New", Destination: "New", RequestID: "r1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved {
			t.Fatalf("expected no persisted move")
		}
	})

	t.Run("unknown destination column", func(t *testing.T) {
		_, uc := newBoardFixture(t, []entities.MaintenanceRequest{{ID: "r1", Stage: entities.StageNew}})

		_, _, err := uc.HandleDrop(context.Background(), DropResult{
			Source: "New", Destination: "Archive", RequestID: "r1",
		})
		if !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		_, uc := newBoardFixture(t, nil)

		_, _, err := uc.HandleDrop(context.Background(), DropResult{Source: "New", RequestID: "ghost"})
		if !errors.Is(err, ErrRequestMissing) {
			t.Fatalf("expected ErrRequestMissing, got %v", err)
		}
	})
}

func TestBoardUseCase_Columns(t *testing.T) {
	_, uc := newBoardFixture(t, []entities.MaintenanceRequest{
		{ID: "r1", Stage: entities.StageInProgress},
		{ID: "r2", Stage: entities.StageNew},
		{ID: "r3", Stage: entities.StageNew},
		{ID: "r4", Stage: entities.StageScrap},
	})

	columns := uc.Columns()
	if len(columns) != len(entities.Stages) {
		t.Fatalf("expected %d columns, got %d", len(entities.Stages), len(columns))
	}
	for i, stage := range entities.Stages {
		if columns[i].Stage != stage {
			t.Fatalf("expected column %d to be %q, got %q", i, stage, columns[i].Stage)
		}
	}
	if len(columns[0].Requests) != 2 || len(columns[1].Requests) != 1 {
		t.Fatalf("unexpected grouping: %+v", columns)
	}
	if len(columns[2].Requests) != 0 {
		t.Fatalf("empty column should have zero requests, got %+v", columns[2].Requests)
	}
}
