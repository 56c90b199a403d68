package entities

import "testing"

func TestTeamDefaultTechnician(t *testing.T) {
	team := Team{Members: []string{"Vikram Singh", "Suresh Reddy"}}
	if got := team.DefaultTechnician(); got != "Vikram Singh" {
		t.Fatalf("expected first member, got %q", got)
	}

	empty := Team{}
	if got := empty.DefaultTechnician(); got != "" {
		t.Fatalf("expected empty technician, got %q", got)
	}
}
