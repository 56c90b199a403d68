package entities

import "time"

// Team is a maintenance crew. Members is an ordered list of technician
// names; uniqueness is not enforced.
type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Members        []string  `json:"members"`
	Specialization string    `json:"specialization"`
	Company        string    `json:"company"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultTechnician is the technician auto-assigned when this team is
// selected: the first member, or empty for a team with no members.
func (t Team) DefaultTechnician() string {
	if len(t.Members) == 0 {
		return ""
	}
	return t.Members[0]
}
