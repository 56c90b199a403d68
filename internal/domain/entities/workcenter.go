package entities

import "time"

// WorkCenter is a named production resource with cost/capacity/efficiency
// attributes. The engine treats work centers as read-only reference data:
// equipment may point at one, nothing here mutates them.
type WorkCenter struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Tag         string    `json:"tag"`
	Alternative string    `json:"alternative"`
	CostPerHour float64   `json:"cost"`
	Capacity    int       `json:"capacity"`
	Efficiency  int       `json:"efficiency"`
	OEETarget   int       `json:"oee_target"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
