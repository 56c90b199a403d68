package entities

import "time"

// Stage is the lifecycle state of a maintenance request.
//
// Domain notes:
//   - Requests are born in StageNew unless explicitly constructed otherwise.
//   - The transition graph is intentionally total: the kanban board allows
//     dragging a card from any column to any other, so every stage is
//     reachable from every stage. Edge validation, if it ever becomes a
//     requirement, belongs in LifecycleUseCase and must not leak into the
//     aggregations.
type Stage string

const (
	StageNew        Stage = "New"
	StageInProgress Stage = "In Progress"
	StageRepaired   Stage = "Repaired"
	StageScrap      Stage = "Scrap"
)

// Stages lists the board columns in display order.
var Stages = []Stage{StageNew, StageInProgress, StageRepaired, StageScrap}

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageInProgress, StageRepaired, StageScrap:
		return true
	}
	return false
}

// Terminal reports whether the request is resolved: repaired or scrapped
// requests are never considered overdue and never count as open work.
func (s Stage) Terminal() bool {
	return s == StageRepaired || s == StageScrap
}

// Open reports whether the request still represents pending work.
func (s Stage) Open() bool {
	return s == StageNew || s == StageInProgress
}

// MaintenanceType distinguishes planned from reactive work; compliance
// reporting is computed over Preventive requests only.
type MaintenanceType string

const (
	MaintenanceCorrective MaintenanceType = "Corrective"
	MaintenancePreventive MaintenanceType = "Preventive"
)

// TargetType is what the request is raised against.
type TargetType string

const (
	TargetEquipment TargetType = "Equipment"
	TargetFacility  TargetType = "Facility"
	TargetVehicle   TargetType = "Vehicle"
)

// Priority levels. 3 is the highest and feeds the critical-pending metric.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// MaintenanceRequest is a unit of maintenance work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Equipment and Category are denormalized snapshots taken from the selected
// equipment at creation/selection time. They deliberately do not re-sync if
// the equipment record is edited later; they record what the request was
// raised against.
//
// Date fields (RequestDate, ScheduledDate) are date-only YYYY-MM-DD strings,
// empty when absent. ScheduledTime is HH:MM. Duration is HH:MM where "00:00"
// means no duration was given.
type MaintenanceRequest struct {
	ID            string          `json:"id"`
	Subject       string          `json:"subject"`
	CreatedBy     string          `json:"created_by"`
	TargetType    TargetType      `json:"target_type"`
	EquipmentID   string          `json:"equipment_id"`
	Equipment     string          `json:"equipment"`
	Category      string          `json:"category"`
	RequestDate   string          `json:"request_date"`
	Type          MaintenanceType `json:"maintenance_type"`
	Team          string          `json:"team"`
	Technician    string          `json:"technician"`
	ScheduledDate string          `json:"scheduled_date"`
	ScheduledTime string          `json:"scheduled_time"`
	Duration      string          `json:"duration"`
	Priority      int             `json:"priority"`
	Company       string          `json:"company"`
	Stage         Stage           `json:"stage"`
	Notes         string          `json:"notes"`
	Instructions  string          `json:"instructions"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
