package usecase

import (
	"math"
	"time"

	"manutencao_xpto/internal/domain/entities"
)

// DashboardMetrics is the operational overview computed from the live
// snapshot.
type DashboardMetrics struct {
	OpenRequests      int `json:"open_requests"`
	OverdueRequests   int `json:"overdue_requests"`
	CriticalEquipment int `json:"critical_equipment"`
	TechnicianLoad    int `json:"technician_load"`
}

// ReportingMetrics is the historical/compliance view.
type ReportingMetrics struct {
	TotalRequests     int     `json:"total_requests"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
	ComplianceRate    int     `json:"compliance_rate"`
	CriticalPending   int     `json:"critical_pending"`
}

// IMetricsUseCase aggregates dashboard and reporting metrics. Both are pure
// reductions over the store's current snapshot and are recomputed on every
// call, so they are always fresh after a write.
type IMetricsUseCase interface {
	Dashboard() DashboardMetrics
	Reporting() ReportingMetrics
}

type MetricsUseCase struct {
	store IMaintenanceStore
	now   func() time.Time
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(store IMaintenanceStore) *MetricsUseCase {
	return &MetricsUseCase{store: store, now: time.Now}
}

// WithClock overrides the time source. Tests use it to pin "today".
func (u *MetricsUseCase) WithClock(now func() time.Time) *MetricsUseCase {
	u.now = now
	return u
}

func (u *MetricsUseCase) Dashboard() DashboardMetrics {
	requests := u.store.Requests()
	equipment := u.store.Equipment()
	teams := u.store.Teams()
	today := u.now()

	var m DashboardMetrics

	requestsByEquipment := make(map[string][]entities.MaintenanceRequest)
	for _, r := range requests {
		if r.Stage.Open() {
			m.OpenRequests++
		}
		if entities.IsOverdue(r, today) {
			m.OverdueRequests++
		}
		if r.EquipmentID != "" {
			requestsByEquipment[r.EquipmentID] = append(requestsByEquipment[r.EquipmentID], r)
		}
	}

	// Critical: at least one overdue request, or more than two requests at
	// all, against the same equipment.
	for _, eq := range equipment {
		assoc := requestsByEquipment[eq.ID]
		critical := len(assoc) > 2
		for _, r := range assoc {
			if critical {
				break
			}
			critical = entities.IsOverdue(r, today)
		}
		if critical {
			m.CriticalEquipment++
		}
	}

	m.TechnicianLoad = technicianLoad(requests, teams)
	return m
}

// technicianLoad is the percentage of known technicians currently holding
// at least one In Progress request. Requests with a blank technician do not
// count as an active technician.
func technicianLoad(requests []entities.MaintenanceRequest, teams []entities.Team) int {
	active := make(map[string]struct{})
	for _, r := range requests {
		if r.Stage == entities.StageInProgress && r.Technician != "" {
			active[r.Technician] = struct{}{}
		}
	}

	known := make(map[string]struct{})
	for _, t := range teams {
		for _, member := range t.Members {
			known[member] = struct{}{}
		}
	}
	if len(known) == 0 {
		return 0
	}
	return int(math.Round(float64(len(active)) / float64(len(known)) * 100))
}

func (u *MetricsUseCase) Reporting() ReportingMetrics {
	requests := u.store.Requests()
	today := u.now()

	m := ReportingMetrics{TotalRequests: len(requests)}

	var (
		resolutionSum   float64
		resolutionCount int
		preventive      int
		preventiveDone  int
	)
	for _, r := range requests {
		if r.Stage == entities.StageRepaired {
			// Repaired requests without a parseable scheduled date carry no
			// resolution interval and are left out of the average.
			if scheduled, ok := entities.ParseDate(r.ScheduledDate); ok {
				days := math.Abs(scheduled.Sub(r.CreatedAt).Hours() / 24)
				resolutionSum += days
				resolutionCount++
			}
		}
		if r.Type == entities.MaintenancePreventive {
			preventive++
			if r.Stage == entities.StageRepaired {
				preventiveDone++
			}
		}
		if r.Stage.Open() && (entities.IsOverdue(r, today) || r.Priority == entities.PriorityHigh) {
			m.CriticalPending++
		}
	}

	if resolutionCount > 0 {
		m.AvgResolutionDays = math.Round(resolutionSum/float64(resolutionCount)*10) / 10
	}
	if preventive > 0 {
		m.ComplianceRate = int(math.Round(float64(preventiveDone) / float64(preventive) * 100))
	}
	return m
}
