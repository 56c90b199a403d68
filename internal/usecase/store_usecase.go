package usecase

import (
	"context"
	"errors"
	"sync"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoActiveSession  = errors.New("no active session")
	ErrEquipmentMissing = errors.New("equipment not found")
	ErrTeamMissing      = errors.New("team not found")
	ErrRequestMissing   = errors.New("maintenance request not found")
)

// IMaintenanceStore is the session-scoped working set of equipment, teams
// and maintenance requests, together with the write-through mutations.
//
// Lifecycle: SetIdentity drives the store. A null→present transition loads
// all collections; present→null clears them; switching identities reloads.
// There is no background refresh — callers invoke Refresh after external
// changes.
type IMaintenanceStore interface {
	SetIdentity(ctx context.Context, userID string) error
	Identity() string
	Refresh(ctx context.Context) error

	Equipment() []entities.Equipment
	Teams() []entities.Team
	Requests() []entities.MaintenanceRequest
	WorkCenters() []entities.WorkCenter

	EquipmentByID(id string) (entities.Equipment, bool)
	TeamByName(name string) (entities.Team, bool)
	RequestByID(id string) (entities.MaintenanceRequest, bool)
	RequestsByEquipment(equipmentID string) []entities.MaintenanceRequest
	OpenRequestsCount(equipmentID string) int

	AddEquipment(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, e entities.Equipment) (entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error

	AddTeam(ctx context.Context, t entities.Team) (entities.Team, error)
	UpdateTeam(ctx context.Context, id string, t entities.Team) (entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	AddRequest(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id string, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

// MaintenanceStore owns the in-memory collections for the active session.
//
// Mutations are serialized by muWrite for the lifetime of the remote call
// plus the local merge, so a slow persistence backend delays callers rather
// than interleaving writes. Snapshot state is guarded separately by mu so
// readers are never blocked by an in-flight remote write.
type MaintenanceStore struct {
	equipmentRepo  interfaces.IEquipmentRepository
	teamRepo       interfaces.ITeamRepository
	requestRepo    interfaces.IRequestRepository
	workCenterRepo interfaces.IWorkCenterRepository
	logger         *zap.Logger

	muWrite sync.Mutex

	mu          sync.RWMutex
	userID      string
	equipment   []entities.Equipment
	teams       []entities.Team
	requests    []entities.MaintenanceRequest
	workCenters []entities.WorkCenter
}

var _ IMaintenanceStore = (*MaintenanceStore)(nil)

func NewMaintenanceStore(
	equipmentRepo interfaces.IEquipmentRepository,
	teamRepo interfaces.ITeamRepository,
	requestRepo interfaces.IRequestRepository,
	workCenterRepo interfaces.IWorkCenterRepository,
	logger *zap.Logger,
) *MaintenanceStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceStore{
		equipmentRepo:  equipmentRepo,
		teamRepo:       teamRepo,
		requestRepo:    requestRepo,
		workCenterRepo: workCenterRepo,
		logger:         logger,
	}
}

// SetIdentity applies an identity transition. Passing the current identity
// is a no-op; an empty userID tears the session down.
func (s *MaintenanceStore) SetIdentity(ctx context.Context, userID string) error {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()

	s.mu.Lock()
	prev := s.userID
	s.userID = userID
	if userID == "" {
		s.equipment = nil
		s.teams = nil
		s.requests = nil
		s.workCenters = nil
	}
	s.mu.Unlock()

	if userID == "" || userID == prev {
		return nil
	}
	s.logger.Info("session started, loading collections", zap.String("user_id", userID))
	return s.load(ctx)
}

func (s *MaintenanceStore) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Refresh re-runs the full load for the active session.
func (s *MaintenanceStore) Refresh(ctx context.Context) error {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return ErrNoActiveSession
	}
	return s.load(ctx)
}

// load fetches every collection concurrently and publishes the results in
// one step once all fetches have completed, so aggregations never observe a
// half-loaded snapshot. A failed fetch is logged and leaves that collection
// as it was; the others are still applied.
func (s *MaintenanceStore) load(ctx context.Context) error {
	var (
		equipment   []entities.Equipment
		teams       []entities.Team
		requests    []entities.MaintenanceRequest
		workCenters []entities.WorkCenter

		okEquipment, okTeams, okRequests, okWorkCenters bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if equipment, err = s.equipmentRepo.List(gctx); err != nil {
			s.logger.Error("loading equipment failed", zap.Error(err))
			return nil
		}
		okEquipment = true
		return nil
	})
	g.Go(func() error {
		var err error
		if teams, err = s.teamRepo.List(gctx); err != nil {
			s.logger.Error("loading teams failed", zap.Error(err))
			return nil
		}
		okTeams = true
		return nil
	})
	g.Go(func() error {
		var err error
		if requests, err = s.requestRepo.List(gctx); err != nil {
			s.logger.Error("loading maintenance requests failed", zap.Error(err))
			return nil
		}
		okRequests = true
		return nil
	})
	g.Go(func() error {
		var err error
		if workCenters, err = s.workCenterRepo.List(gctx); err != nil {
			s.logger.Error("loading work centers failed", zap.Error(err))
			return nil
		}
		okWorkCenters = true
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if okEquipment {
		s.equipment = equipment
	}
	if okTeams {
		s.teams = teams
	}
	if okRequests {
		s.requests = requests
	}
	if okWorkCenters {
		s.workCenters = workCenters
	}
	return nil
}

// ---------- snapshot readers ----------

func (s *MaintenanceStore) Equipment() []entities.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Equipment, len(s.equipment))
	copy(out, s.equipment)
	return out
}

func (s *MaintenanceStore) Teams() []entities.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

func (s *MaintenanceStore) Requests() []entities.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.MaintenanceRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *MaintenanceStore) WorkCenters() []entities.WorkCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.WorkCenter, len(s.workCenters))
	copy(out, s.workCenters)
	return out
}

func (s *MaintenanceStore) EquipmentByID(id string) (entities.Equipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.equipment {
		if e.ID == id {
			return e, true
		}
	}
	return entities.Equipment{}, false
}

func (s *MaintenanceStore) TeamByName(name string) (entities.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.Name == name {
			return t, true
		}
	}
	return entities.Team{}, false
}

func (s *MaintenanceStore) RequestByID(id string) (entities.MaintenanceRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return entities.MaintenanceRequest{}, false
}

func (s *MaintenanceStore) RequestsByEquipment(equipmentID string) []entities.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.MaintenanceRequest
	for _, r := range s.requests {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out
}

func (s *MaintenanceStore) OpenRequestsCount(equipmentID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.requests {
		if r.EquipmentID == equipmentID && r.Stage.Open() {
			n++
		}
	}
	return n
}

// ---------- equipment mutations ----------

// AddEquipment performs the remote insert and, only on success, prepends the
// created record. On failure local state is untouched and the repository's
// RemoteError is returned.
func (s *MaintenanceStore) AddEquipment(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return entities.Equipment{}, ErrNoActiveSession
	}

	created, err := s.equipmentRepo.Insert(ctx, e)
	if err != nil {
		s.logger.Error("add equipment failed", zap.Error(err))
		return entities.Equipment{}, err
	}

	s.mu.Lock()
	s.equipment = append([]entities.Equipment{created}, s.equipment...)
	s.mu.Unlock()
	return created, nil
}

func (s *MaintenanceStore) UpdateEquipment(ctx context.Context, id string, e entities.Equipment) (entities.Equipment, error) {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return entities.Equipment{}, ErrNoActiveSession
	}

	updated, err := s.equipmentRepo.Update(ctx, id, e)
	if err != nil {
		s.logger.Error("update equipment failed", zap.String("id", id), zap.Error(err))
		return entities.Equipment{}, err
	}

	s.mu.Lock()
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			s.equipment[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *MaintenanceStore) DeleteEquipment(ctx context.Context, id string) error {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return ErrNoActiveSession
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		s.logger.Error("delete equipment failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	kept := s.equipment[:0]
	for _, eq := range s.equipment {
		if eq.ID != id {
			kept = append(kept, eq)
		}
	}
	s.equipment = kept
	s.mu.Unlock()
	return nil
}

// ---------- team mutations ----------

func (s *MaintenanceStore) AddTeam(ctx context.Context, t entities.Team) (entities.Team, error) {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return entities.Team{}, ErrNoActiveSession
	}

	created, err := s.teamRepo.Insert(ctx, t)
	if err != nil {
		s.logger.Error("add team failed", zap.Error(err))
		return entities.Team{}, err
	}

	s.mu.Lock()
	s.teams = append([]entities.Team{created}, s.teams...)
	s.mu.Unlock()
	return created, nil
}

func (s *MaintenanceStore) UpdateTeam(ctx context.Context, id string, t entities.Team) (entities.Team, error) {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return entities.Team{}, ErrNoActiveSession
	}

	updated, err := s.teamRepo.Update(ctx, id, t)
	if err != nil {
		s.logger.Error("update team failed", zap.String("id", id), zap.Error(err))
		return entities.Team{}, err
	}

	s.mu.Lock()
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *MaintenanceStore) DeleteTeam(ctx context.Context, id string) error {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return ErrNoActiveSession
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		s.logger.Error("delete team failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	kept := s.teams[:0]
	for _, t := range s.teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.teams = kept
	s.mu.Unlock()
	return nil
}

// ---------- request mutations ----------

func (s *MaintenanceStore) AddRequest(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return entities.MaintenanceRequest{}, ErrNoActiveSession
	}

	created, err := s.requestRepo.Insert(ctx, r)
	if err != nil {
		s.logger.Error("add request failed", zap.Error(err))
		return entities.MaintenanceRequest{}, err
	}

	s.mu.Lock()
	s.requests = append([]entities.MaintenanceRequest{created}, s.requests...)
	s.mu.Unlock()
	return created, nil
}

func (s *MaintenanceStore) UpdateRequest(ctx context.Context, id string, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return entities.MaintenanceRequest{}, ErrNoActiveSession
	}

	updated, err := s.requestRepo.Update(ctx, id, r)
	if err != nil {
		s.logger.Error("update request failed", zap.String("id", id), zap.Error(err))
		return entities.MaintenanceRequest{}, err
	}

	s.mu.Lock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *MaintenanceStore) DeleteRequest(ctx context.Context, id string) error {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	if s.Identity() == "" {
		return ErrNoActiveSession
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		s.logger.Error("delete request failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	kept := s.requests[:0]
	for _, r := range s.requests {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.requests = kept
	s.mu.Unlock()
	return nil
}
