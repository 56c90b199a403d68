package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"manutencao_xpto/internal/domain/entities"
	mock_interfaces "manutencao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type storeMocks struct {
	equipment   *mock_interfaces.MockIEquipmentRepository
	teams       *mock_interfaces.MockITeamRepository
	requests    *mock_interfaces.MockIRequestRepository
	workCenters *mock_interfaces.MockIWorkCenterRepository
}

func newStoreMocks(ctrl *gomock.Controller) storeMocks {
	return storeMocks{
		equipment:   mock_interfaces.NewMockIEquipmentRepository(ctrl),
		teams:       mock_interfaces.NewMockITeamRepository(ctrl),
		requests:    mock_interfaces.NewMockIRequestRepository(ctrl),
		workCenters: mock_interfaces.NewMockIWorkCenterRepository(ctrl),
	}
}

func (m storeMocks) newStore() *MaintenanceStore {
	return NewMaintenanceStore(m.equipment, m.teams, m.requests, m.workCenters, nil)
}

func (m storeMocks) expectLoad(equipment []entities.Equipment, teams []entities.Team, requests []entities.MaintenanceRequest, workCenters []entities.WorkCenter) {
	m.equipment.EXPECT().List(gomock.Any()).Return(equipment, nil)
	m.teams.EXPECT().List(gomock.Any()).Return(teams, nil)
	m.requests.EXPECT().List(gomock.Any()).Return(requests, nil)
	m.workCenters.EXPECT().List(gomock.Any()).Return(workCenters, nil)
}

func TestMaintenanceStore_SetIdentity(t *testing.T) {
	t.Run("signing in loads every collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()

		mocks.expectLoad(
			[]entities.Equipment{{ID: "e1", Name: "CNC Lathe M1"}},
			[]entities.Team{{ID: "t1", Name: "Mechanical Crew"}},
			[]entities.MaintenanceRequest{{ID: "r1", Subject: "Oil leak"}},
			[]entities.WorkCenter{{ID: "w1", Name: "Drill Station 1"}},
		)

		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Identity() != "user-1" {
			t.Fatalf("expected identity user-1, got %q", store.Identity())
		}
		if len(store.Equipment()) != 1 || len(store.Teams()) != 1 || len(store.Requests()) != 1 || len(store.WorkCenters()) != 1 {
			t.Fatalf("expected all collections loaded")
		}
	})

	t.Run("same identity is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()

		mocks.expectLoad(nil, nil, nil, nil)
		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// No further List expectations: a second load would fail the test.
		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("signing out clears the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()

		mocks.expectLoad([]entities.Equipment{{ID: "e1"}}, nil, nil, nil)
		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.SetIdentity(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Identity() != "" || len(store.Equipment()) != 0 {
			t.Fatalf("expected cleared session")
		}
	})

	t.Run("switching identities reloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()

		mocks.expectLoad([]entities.Equipment{{ID: "e1"}}, nil, nil, nil)
		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mocks.expectLoad([]entities.Equipment{{ID: "e2"}}, nil, nil, nil)
		if err := store.SetIdentity(context.Background(), "user-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		eq := store.Equipment()
		if len(eq) != 1 || eq[0].ID != "e2" {
			t.Fatalf("expected user-2 snapshot, got %+v", eq)
		}
	})

	t.Run("failed fetch keeps the previous collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()

		mocks.expectLoad(
			[]entities.Equipment{{ID: "e1"}},
			[]entities.Team{{ID: "t1"}},
			nil, nil,
		)
		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mocks.equipment.EXPECT().List(gomock.Any()).Return(nil, errors.New("scan failed"))
		mocks.teams.EXPECT().List(gomock.Any()).Return([]entities.Team{{ID: "t2"}}, nil)
		mocks.requests.EXPECT().List(gomock.Any()).Return(nil, nil)
		mocks.workCenters.EXPECT().List(gomock.Any()).Return(nil, nil)
		if err := store.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if eq := store.Equipment(); len(eq) != 1 || eq[0].ID != "e1" {
			t.Fatalf("expected stale equipment kept, got %+v", eq)
		}
		if teams := store.Teams(); len(teams) != 1 || teams[0].ID != "t2" {
			t.Fatalf("expected teams refreshed, got %+v", teams)
		}
	})
}

func TestMaintenanceStore_Refresh(t *testing.T) {
	t.Run("without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := newStoreMocks(ctrl).newStore()

		if err := store.Refresh(context.Background()); !errors.Is(err, ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession, got %v", err)
		}
	})
}

func TestMaintenanceStore_Mutations(t *testing.T) {
	signIn := func(t *testing.T, mocks storeMocks, store *MaintenanceStore, requests []entities.MaintenanceRequest) {
		t.Helper()
		mocks.expectLoad(nil, nil, requests, nil)
		if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("mutations require a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := newStoreMocks(ctrl).newStore()

		if _, err := store.AddEquipment(context.Background(), entities.Equipment{}); !errors.Is(err, ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession, got %v", err)
		}
		if _, err := store.UpdateTeam(context.Background(), "t1", entities.Team{}); !errors.Is(err, ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession, got %v", err)
		}
		if err := store.DeleteRequest(context.Background(), "r1"); !errors.Is(err, ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession, got %v", err)
		}
	})

	t.Run("add prepends the created record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()
		signIn(t, mocks, store, []entities.MaintenanceRequest{{ID: "r1"}})

		mocks.requests.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.MaintenanceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
				r.ID = "r2"
				return r, nil
			},
		)

		created, err := store.AddRequest(context.Background(), entities.MaintenanceRequest{Subject: "New fault"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "r2" {
			t.Fatalf("expected persisted ID, got %q", created.ID)
		}
		requests := store.Requests()
		if len(requests) != 2 || requests[0].ID != "r2" || requests[1].ID != "r1" {
			t.Fatalf("expected newest first, got %+v", requests)
		}
	})

	t.Run("added equipment is found by its returned id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()
		signIn(t, mocks, store, nil)

		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		mocks.equipment.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.Equipment{})).DoAndReturn(
			func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
				e.ID = "e1"
				e.CreatedAt = now
				e.UpdatedAt = now
				return e, nil
			},
		)

		in := entities.Equipment{Name: "CNC Lathe", Category: "Machinery", Team: "Mechanics"}
		created, err := store.AddEquipment(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, ok := store.EquipmentByID(created.ID)
		if !ok {
			t.Fatalf("expected equipment %q in the snapshot", created.ID)
		}
		want := in
		want.ID = "e1"
		want.CreatedAt = now
		want.UpdatedAt = now
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("update replaces in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()
		signIn(t, mocks, store, []entities.MaintenanceRequest{{ID: "r1"}, {ID: "r2", Subject: "old"}})

		mocks.requests.EXPECT().Update(gomock.Any(), "r2", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
				r.ID = id
				return r, nil
			},
		)

		if _, err := store.UpdateRequest(context.Background(), "r2", entities.MaintenanceRequest{Subject: "new"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		requests := store.Requests()
		if len(requests) != 2 || requests[1].Subject != "new" {
			t.Fatalf("expected in-place replacement, got %+v", requests)
		}
	})

	t.Run("delete removes from the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()
		signIn(t, mocks, store, []entities.MaintenanceRequest{{ID: "r1"}, {ID: "r2"}})

		mocks.requests.EXPECT().Delete(gomock.Any(), "r1").Return(nil)

		if err := store.DeleteRequest(context.Background(), "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		requests := store.Requests()
		if len(requests) != 1 || requests[0].ID != "r2" {
			t.Fatalf("expected r1 removed, got %+v", requests)
		}
	})

	t.Run("failed write leaves the snapshot untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mocks := newStoreMocks(ctrl)
		store := mocks.newStore()
		signIn(t, mocks, store, []entities.MaintenanceRequest{{ID: "r1"}})

		mocks.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.MaintenanceRequest{}, errors.New("put failed"))
		if _, err := store.AddRequest(context.Background(), entities.MaintenanceRequest{}); err == nil {
			t.Fatalf("expected error")
		}

		mocks.requests.EXPECT().Delete(gomock.Any(), "r1").Return(errors.New("delete failed"))
		if err := store.DeleteRequest(context.Background(), "r1"); err == nil {
			t.Fatalf("expected error")
		}

		requests := store.Requests()
		if len(requests) != 1 || requests[0].ID != "r1" {
			t.Fatalf("expected snapshot untouched, got %+v", requests)
		}
	})
}

func TestMaintenanceStore_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mocks := newStoreMocks(ctrl)
	store := mocks.newStore()

	mocks.expectLoad(
		[]entities.Equipment{{ID: "e1", Name: "CNC Lathe M1"}},
		[]entities.Team{{ID: "t1", Name: "IT Support", Members: []string{"Priya Sharma"}}},
		[]entities.MaintenanceRequest{
			{ID: "r1", EquipmentID: "e1", Stage: entities.StageNew},
			{ID: "r2", EquipmentID: "e1", Stage: entities.StageRepaired},
			{ID: "r3", EquipmentID: "e2", Stage: entities.StageInProgress},
		},
		nil,
	)
	if err := store.SetIdentity(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := store.EquipmentByID("e1"); !ok {
		t.Fatalf("expected e1 found")
	}
	if _, ok := store.EquipmentByID("nope"); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := store.TeamByName("IT Support"); !ok {
		t.Fatalf("expected team found")
	}
	if _, ok := store.RequestByID("r3"); !ok {
		t.Fatalf("expected r3 found")
	}
	if got := store.RequestsByEquipment("e1"); len(got) != 2 {
		t.Fatalf("expected 2 requests for e1, got %d", len(got))
	}
	if got := store.OpenRequestsCount("e1"); got != 1 {
		t.Fatalf("expected 1 open request for e1, got %d", got)
	}
}
