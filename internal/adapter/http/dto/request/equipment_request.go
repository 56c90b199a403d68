package request

import "manutencao_xpto/internal/domain/entities"

// EquipmentRequest is the create/update payload for an equipment record.
type EquipmentRequest struct {
	Name           string `json:"name" binding:"required"`
	SerialNumber   string `json:"serial_number"`
	Category       string `json:"category"`
	Department     string `json:"department"`
	Employee       string `json:"employee"`
	Location       string `json:"location"`
	Team           string `json:"team"`
	Technician     string `json:"technician"`
	WorkCenterID   string `json:"work_center_id"`
	PurchaseDate   string `json:"purchase_date"`
	WarrantyDate   string `json:"warranty_date"`
	AssignmentDate string `json:"assignment_date"`
	ScrapDate      string `json:"scrap_date"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

func (r EquipmentRequest) ToEntity() entities.Equipment {
	status := entities.EquipmentStatus(r.Status)
	if r.Status == "" {
		status = entities.EquipmentActive
	}
	return entities.Equipment{
		Name:           r.Name,
		SerialNumber:   r.SerialNumber,
		Category:       r.Category,
		Department:     r.Department,
		Employee:       r.Employee,
		Location:       r.Location,
		Team:           r.Team,
		Technician:     r.Technician,
		WorkCenterID:   r.WorkCenterID,
		PurchaseDate:   r.PurchaseDate,
		WarrantyDate:   r.WarrantyDate,
		AssignmentDate: r.AssignmentDate,
		ScrapDate:      r.ScrapDate,
		Status:         status,
		Notes:          r.Notes,
	}
}
