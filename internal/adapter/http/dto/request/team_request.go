package request

import "manutencao_xpto/internal/domain/entities"

// TeamRequest is the create/update payload for a maintenance team. Members
// keeps its order; the first member is the team's default technician.
type TeamRequest struct {
	Name           string   `json:"name" binding:"required"`
	Members        []string `json:"members"`
	Specialization string   `json:"specialization"`
	Company        string   `json:"company"`
}

func (r TeamRequest) ToEntity() entities.Team {
	return entities.Team{
		Name:           r.Name,
		Members:        r.Members,
		Specialization: r.Specialization,
		Company:        r.Company,
	}
}
