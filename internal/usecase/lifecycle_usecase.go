package usecase

import (
	"context"
	"errors"

	"manutencao_xpto/internal/domain/entities"
)

var ErrInvalidStage = errors.New("invalid stage")

// ILifecycleUseCase owns stage moves on maintenance requests and the
// cross-entity selection rules:
//
//   - selecting an equipment copies its category and team onto the request,
//     overwriting prior values;
//   - selecting a team sets the technician to the team's first member, or
//     clears it when the team has no members.
//
// Selections fire once, at selection time. Editing the equipment or team
// afterwards does not re-sync records that copied from them.
type ILifecycleUseCase interface {
	CreateRequest(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	MoveRequestToStage(ctx context.Context, id string, stage entities.Stage) (entities.MaintenanceRequest, error)
	SelectEquipmentForRequest(ctx context.Context, requestID, equipmentID string) (entities.MaintenanceRequest, error)
	SelectTeamForRequest(ctx context.Context, requestID, teamName string) (entities.MaintenanceRequest, error)
	SelectTeamForEquipment(ctx context.Context, equipmentID, teamName string) (entities.Equipment, error)
}

type LifecycleUseCase struct {
	store IMaintenanceStore
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(store IMaintenanceStore) *LifecycleUseCase {
	return &LifecycleUseCase{store: store}
}

// ApplyEquipmentSelection copies the denormalized snapshot fields from eq
// onto r. Category and team overwrite whatever the request held before.
func ApplyEquipmentSelection(r *entities.MaintenanceRequest, eq entities.Equipment) {
	r.EquipmentID = eq.ID
	r.Equipment = eq.Name
	r.Category = eq.Category
	r.Team = eq.Team
}

// ApplyTeamSelection sets the request's team and auto-assigns the default
// technician (empty for a memberless team).
func ApplyTeamSelection(r *entities.MaintenanceRequest, t entities.Team) {
	r.Team = t.Name
	r.Technician = t.DefaultTechnician()
}

// ApplyTeamSelectionToEquipment mirrors ApplyTeamSelection for equipment
// records.
func ApplyTeamSelectionToEquipment(eq *entities.Equipment, t entities.Team) {
	eq.Team = t.Name
	eq.Technician = t.DefaultTechnician()
}

// CreateRequest applies the creation-time rules and persists the request.
//
// New requests start in StageNew unless a stage was supplied. When the
// request references an equipment, the denormalized name is always taken
// from the equipment; category and team are resolved from it only when the
// caller did not override them. A team without an explicit technician gets
// the team's default technician.
func (u *LifecycleUseCase) CreateRequest(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	if r.Stage == "" {
		r.Stage = entities.StageNew
	}
	if !r.Stage.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidStage
	}

	if r.EquipmentID != "" {
		eq, ok := u.store.EquipmentByID(r.EquipmentID)
		if !ok {
			return entities.MaintenanceRequest{}, ErrEquipmentMissing
		}
		r.Equipment = eq.Name
		if r.Category == "" {
			r.Category = eq.Category
		}
		if r.Team == "" {
			r.Team = eq.Team
		}
	}
	if r.Team != "" && r.Technician == "" {
		if team, ok := u.store.TeamByName(r.Team); ok {
			r.Technician = team.DefaultTechnician()
		}
	}

	return u.store.AddRequest(ctx, r)
}

// MoveRequestToStage sets the request's stage and nothing else. The
// transition graph is total: any stage is reachable from any other, so the
// only rejected input is a value outside the four stages.
func (u *LifecycleUseCase) MoveRequestToStage(ctx context.Context, id string, stage entities.Stage) (entities.MaintenanceRequest, error) {
	if !stage.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidStage
	}
	req, ok := u.store.RequestByID(id)
	if !ok {
		return entities.MaintenanceRequest{}, ErrRequestMissing
	}
	req.Stage = stage
	return u.store.UpdateRequest(ctx, id, req)
}

func (u *LifecycleUseCase) SelectEquipmentForRequest(ctx context.Context, requestID, equipmentID string) (entities.MaintenanceRequest, error) {
	req, ok := u.store.RequestByID(requestID)
	if !ok {
		return entities.MaintenanceRequest{}, ErrRequestMissing
	}
	eq, ok := u.store.EquipmentByID(equipmentID)
	if !ok {
		return entities.MaintenanceRequest{}, ErrEquipmentMissing
	}
	ApplyEquipmentSelection(&req, eq)
	return u.store.UpdateRequest(ctx, requestID, req)
}

func (u *LifecycleUseCase) SelectTeamForRequest(ctx context.Context, requestID, teamName string) (entities.MaintenanceRequest, error) {
	req, ok := u.store.RequestByID(requestID)
	if !ok {
		return entities.MaintenanceRequest{}, ErrRequestMissing
	}
	team, ok := u.store.TeamByName(teamName)
	if !ok {
		return entities.MaintenanceRequest{}, ErrTeamMissing
	}
	ApplyTeamSelection(&req, team)
	return u.store.UpdateRequest(ctx, requestID, req)
}

func (u *LifecycleUseCase) SelectTeamForEquipment(ctx context.Context, equipmentID, teamName string) (entities.Equipment, error) {
	eq, ok := u.store.EquipmentByID(equipmentID)
	if !ok {
		return entities.Equipment{}, ErrEquipmentMissing
	}
	team, ok := u.store.TeamByName(teamName)
	if !ok {
		return entities.Equipment{}, ErrTeamMissing
	}
	ApplyTeamSelectionToEquipment(&eq, team)
	return u.store.UpdateEquipment(ctx, equipmentID, eq)
}
