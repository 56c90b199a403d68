package entities

import "time"

// EquipmentStatus is a free status label on an equipment record. The engine
// does not constrain transitions between these values.
type EquipmentStatus string

const (
	EquipmentActive           EquipmentStatus = "Active"
	EquipmentUnderMaintenance EquipmentStatus = "Under Maintenance"
	EquipmentScrapped         EquipmentStatus = "Scrapped"
)

// Equipment is a tracked physical asset persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Team and Technician are names, not references; deleting a team does not
// cascade here. Date fields are date-only YYYY-MM-DD strings, empty when
// absent.
type Equipment struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SerialNumber   string          `json:"serial_number"`
	Category       string          `json:"category"`
	Department     string          `json:"department"`
	Employee       string          `json:"employee"`
	Location       string          `json:"location"`
	Team           string          `json:"team"`
	Technician     string          `json:"technician"`
	WorkCenterID   string          `json:"work_center_id"`
	PurchaseDate   string          `json:"purchase_date"`
	WarrantyDate   string          `json:"warranty_date"`
	AssignmentDate string          `json:"assignment_date"`
	ScrapDate      string          `json:"scrap_date"`
	Status         EquipmentStatus `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
