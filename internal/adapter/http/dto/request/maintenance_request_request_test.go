package request

import (
	"testing"

	"manutencao_xpto/internal/domain/entities"
)

func TestMaintenanceRequestRequest_ToEntity(t *testing.T) {
	t.Run("defaults priority to medium", func(t *testing.T) {
		e := MaintenanceRequestRequest{Subject: "Oil leak"}.ToEntity()
		if e.Priority != entities.PriorityMedium {
			t.Fatalf("expected medium priority, got %d", e.Priority)
		}
	})

	t.Run("keeps explicit priority", func(t *testing.T) {
		e := MaintenanceRequestRequest{Subject: "Oil leak", Priority: entities.PriorityHigh}.ToEntity()
		if e.Priority != entities.PriorityHigh {
			t.Fatalf("expected high priority, got %d", e.Priority)
		}
	})

	t.Run("maps typed fields", func(t *testing.T) {
		e := MaintenanceRequestRequest{
			Subject:    "Oil leak",
			TargetType: "Equipment",
			Type:       "Preventive",
			Stage:      "In Progress",
		}.ToEntity()
		if e.TargetType != entities.TargetEquipment || e.Type != entities.MaintenancePreventive || e.Stage != entities.StageInProgress {
			t.Fatalf("unexpected mapping: %+v", e)
		}
	})
}

func TestEquipmentRequest_ToEntity(t *testing.T) {
	t.Run("defaults status to Active", func(t *testing.T) {
		e := EquipmentRequest{Name: "CNC Lathe M1"}.ToEntity()
		if e.Status != entities.EquipmentActive {
			t.Fatalf("expected Active, got %q", e.Status)
		}
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		e := EquipmentRequest{Name: "CNC Lathe M1", Status: "Scrapped"}.ToEntity()
		if e.Status != entities.EquipmentScrapped {
			t.Fatalf("expected Scrapped, got %q", e.Status)
		}
	})
}
