package request

import "manutencao_xpto/internal/domain/entities"

// MaintenanceRequestRequest is the create/update payload for a maintenance
// request. Stage defaults to New on creation; category/team left empty are
// resolved from the referenced equipment, and a team without a technician
// gets the team's default one.
type MaintenanceRequestRequest struct {
	Subject       string `json:"subject" binding:"required"`
	CreatedBy     string `json:"created_by"`
	TargetType    string `json:"target_type" binding:"omitempty,oneof=Equipment Facility Vehicle"`
	EquipmentID   string `json:"equipment_id"`
	Equipment     string `json:"equipment"`
	Category      string `json:"category"`
	RequestDate   string `json:"request_date"`
	Type          string `json:"maintenance_type" binding:"omitempty,oneof=Corrective Preventive"`
	Team          string `json:"team"`
	Technician    string `json:"technician"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Duration      string `json:"duration"`
	Priority      int    `json:"priority" binding:"omitempty,oneof=1 2 3"`
	Company       string `json:"company"`
	Stage         string `json:"stage"`
	Notes         string `json:"notes"`
	Instructions  string `json:"instructions"`
}

func (r MaintenanceRequestRequest) ToEntity() entities.MaintenanceRequest {
	priority := r.Priority
	if priority == 0 {
		priority = entities.PriorityMedium
	}
	return entities.MaintenanceRequest{
		Subject:       r.Subject,
		CreatedBy:     r.CreatedBy,
		TargetType:    entities.TargetType(r.TargetType),
		EquipmentID:   r.EquipmentID,
		Equipment:     r.Equipment,
		Category:      r.Category,
		RequestDate:   r.RequestDate,
		Type:          entities.MaintenanceType(r.Type),
		Team:          r.Team,
		Technician:    r.Technician,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Duration:      r.Duration,
		Priority:      priority,
		Company:       r.Company,
		Stage:         entities.Stage(r.Stage),
		Notes:         r.Notes,
		Instructions:  r.Instructions,
	}
}

// StageMoveRequest moves a request to another stage.
type StageMoveRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// EquipmentSelectionRequest applies the equipment selection rule to an
// existing request.
type EquipmentSelectionRequest struct {
	EquipmentID string `json:"equipment_id" binding:"required"`
}

// TeamSelectionRequest applies the team selection rule to an existing
// request or equipment record.
type TeamSelectionRequest struct {
	Team string `json:"team" binding:"required"`
}

// BoardMoveRequest is a finished drag on the kanban board.
type BoardMoveRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	RequestID   string `json:"request_id" binding:"required"`
}
