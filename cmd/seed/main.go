package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"manutencao_xpto/internal/adapter/persistence/repository"
	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/infrastructure/database"
	"manutencao_xpto/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// Seeds the DynamoDB tables with a demo dataset: four teams, four work
// centers, eight equipment records and seven maintenance requests spread
// across every stage, including one overdue. Intended for local development
// against dynamodb-local.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ddb := database.ConnectDynamoDB()
	if err := database.EnsureTables(ctx, ddb, repository.TableNames()...); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}

	equipmentRepo := repository.NewEquipmentDynamoRepository(ddb)
	teamRepo := repository.NewTeamDynamoRepository(ddb)
	requestRepo := repository.NewRequestDynamoRepository(ddb)
	workCenterRepo := repository.NewWorkCenterDynamoRepository(ddb)

	if err := seedTeams(ctx, teamRepo); err != nil {
		log.Fatalf("failed to seed teams: %v", err)
	}
	if err := seedWorkCenters(ctx, workCenterRepo); err != nil {
		log.Fatalf("failed to seed work centers: %v", err)
	}
	equipmentByName, err := seedEquipment(ctx, equipmentRepo)
	if err != nil {
		log.Fatalf("failed to seed equipment: %v", err)
	}
	if err := seedRequests(ctx, requestRepo, equipmentByName); err != nil {
		log.Fatalf("failed to seed requests: %v", err)
	}

	fmt.Println("Database seeded successfully with demo data.")
}

func seedTeams(ctx context.Context, repo interfaces.ITeamRepository) error {
	teams := []entities.Team{
		{Name: "Electrical Maintenance", Members: []string{"Rajesh Kumar", "Amit Patel", "Sanjay Gupta"}, Specialization: "Electrical"},
		{Name: "Mechanical Crew", Members: []string{"Vikram Singh", "Suresh Reddy", "Mohan Lal"}, Specialization: "Mechanical"},
		{Name: "IT Support", Members: []string{"Priya Sharma", "Anjali Desai", "Rahul Verma"}, Specialization: "Software/Hardware"},
		{Name: "Facility Ops", Members: []string{"Mohammed Rafiq", "John Fernandes"}, Specialization: "HVAC/Plumbing"},
	}
	for _, t := range teams {
		if _, err := repo.Insert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func seedWorkCenters(ctx context.Context, repo interfaces.IWorkCenterRepository) error {
	workCenters := []entities.WorkCenter{
		{Name: "Drill Station 1", Code: "DS-001", Tag: "Drilling", CostPerHour: 45.00, Capacity: 50, Efficiency: 95, OEETarget: 90},
		{Name: "Assembly Line 1", Code: "AL-001", Tag: "Assembly", Alternative: "Assembly Line 2", CostPerHour: 120.00, Capacity: 100, Efficiency: 88, OEETarget: 85},
		{Name: "Packaging Unit", Code: "PK-001", Tag: "Packaging", CostPerHour: 60.00, Capacity: 80, Efficiency: 98, OEETarget: 95},
		{Name: "Painting Booth", Code: "PB-001", Tag: "Finishing", CostPerHour: 85.00, Capacity: 40, Efficiency: 92, OEETarget: 90},
	}
	for _, wc := range workCenters {
		if _, err := repo.Insert(ctx, wc); err != nil {
			return err
		}
	}
	return nil
}

func seedEquipment(ctx context.Context, repo interfaces.IEquipmentRepository) (map[string]entities.Equipment, error) {
	equipment := []entities.Equipment{
		{Name: "CNC Lathe M1", SerialNumber: "CNC-2023-001", Category: "Machinery", Department: "Production", Location: "Shop Floor A", Team: "Mechanical Crew", Technician: "Vikram Singh", Status: entities.EquipmentActive},
		{Name: "Hydraulic Press HP-50", SerialNumber: "HYD-2022-X5", Category: "Machinery", Department: "Production", Location: "Shop Floor B", Team: "Mechanical Crew", Technician: "Suresh Reddy", Status: entities.EquipmentUnderMaintenance},
		{Name: "Dell Latitude 7420", SerialNumber: "DL-IT-992", Category: "Computers", Department: "IT", Location: "Server Room", Team: "IT Support", Technician: "Priya Sharma", Status: entities.EquipmentActive},
		{Name: "HP LaserJet Pro", SerialNumber: "HP-PRT-44", Category: "Computers", Department: "Admin", Location: "Office 101", Team: "IT Support", Technician: "Rahul Verma", Status: entities.EquipmentActive},
		{Name: "Forklift Toyota 3T", SerialNumber: "FL-LOG-88", Category: "Vehicles", Department: "Logistics", Location: "Warehouse 1", Team: "Mechanical Crew", Technician: "Mohan Lal", Status: entities.EquipmentActive},
		{Name: "Main Server Rack", SerialNumber: "SRV-001", Category: "Computers", Department: "IT", Location: "Data Center", Team: "IT Support", Technician: "Anjali Desai", Status: entities.EquipmentActive},
		{Name: "HVAC Unit - Roof", SerialNumber: "AC-RF-02", Category: "Other", Department: "Facility", Location: "Rooftop", Team: "Facility Ops", Technician: "Mohammed Rafiq", Status: entities.EquipmentActive},
		{Name: "Assembly Line Belt", SerialNumber: "AS-BLT-99", Category: "Machinery", Department: "Production", Location: "Line 3", Team: "Mechanical Crew", Technician: "Vikram Singh", Status: entities.EquipmentScrapped},
	}

	byName := make(map[string]entities.Equipment, len(equipment))
	for _, e := range equipment {
		created, err := repo.Insert(ctx, e)
		if err != nil {
			return nil, err
		}
		byName[created.Name] = created
	}
	return byName, nil
}

func seedRequests(ctx context.Context, repo interfaces.IRequestRepository, equipmentByName map[string]entities.Equipment) error {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format(entities.DateLayout)
	}
	today := day(0)
	yesterday := day(-1)
	lastWeek := day(-7)
	nextWeek := day(7)
	overdueDate := day(-3)

	requests := []entities.MaintenanceRequest{
		{
			Subject: "Oil Leakage in Hydraulic Pump", Equipment: "Hydraulic Press HP-50",
			Category: "Machinery", CreatedBy: "Amit Patel", RequestDate: lastWeek,
			Type: entities.MaintenanceCorrective, Team: "Mechanical Crew", Technician: "Suresh Reddy",
			Priority: entities.PriorityHigh, Stage: entities.StageInProgress,
			ScheduledDate: today, ScheduledTime: "14:00", Duration: "02:30",
		},
		{
			Subject: "Server Overheating Alarm", Equipment: "Main Server Rack",
			Category: "Computers", CreatedBy: "System monitor", RequestDate: yesterday,
			Type: entities.MaintenanceCorrective, Team: "IT Support", Technician: "Anjali Desai",
			Priority: entities.PriorityHigh, Stage: entities.StageNew, ScheduledDate: today,
		},
		{
			Subject: "Monthly Forklift Battery Check", Equipment: "Forklift Toyota 3T",
			Category: "Vehicles", CreatedBy: "Logistics Manager", RequestDate: today,
			Type: entities.MaintenancePreventive, Team: "Mechanical Crew", Technician: "Mohan Lal",
			Priority: entities.PriorityMedium, Stage: entities.StageNew, ScheduledDate: nextWeek,
		},
		{
			Subject: "AC Unit Noise Complaint", Equipment: "HVAC Unit - Roof",
			Category: "Other", CreatedBy: "Office Admin", RequestDate: overdueDate,
			Type: entities.MaintenanceCorrective, Team: "Facility Ops", Technician: "Mohammed Rafiq",
			Priority: entities.PriorityLow, Stage: entities.StageNew, ScheduledDate: overdueDate,
			Notes: "Loud rattling noise reported by 3rd floor staff.",
		},
		{
			Subject: "Replace Conveyor Belt", Equipment: "Assembly Line Belt",
			Category: "Machinery", CreatedBy: "Production Lead", RequestDate: lastWeek,
			Type: entities.MaintenanceCorrective, Team: "Mechanical Crew", Technician: "Vikram Singh",
			Priority: entities.PriorityMedium, Stage: entities.StageScrap, ScheduledDate: yesterday,
			Notes: "Belt snapped beyond repair. Equipment scrapped.",
		},
		{
			Subject: "Keyboard not working", Equipment: "Dell Latitude 7420",
			Category: "Computers", CreatedBy: "Priya Sharma", RequestDate: lastWeek,
			Type: entities.MaintenanceCorrective, Team: "IT Support", Technician: "Priya Sharma",
			Priority: entities.PriorityLow, Stage: entities.StageRepaired,
			ScheduledDate: yesterday, Duration: "00:45",
		},
		{
			Subject: "Routine CNC Calibration", Equipment: "CNC Lathe M1",
			Category: "Machinery", CreatedBy: "Quality Control", RequestDate: today,
			Type: entities.MaintenancePreventive, Team: "Mechanical Crew", Technician: "Vikram Singh",
			Priority: entities.PriorityMedium, Stage: entities.StageInProgress, ScheduledDate: today,
		},
	}

	for _, r := range requests {
		r.TargetType = entities.TargetEquipment
		if eq, ok := equipmentByName[r.Equipment]; ok {
			r.EquipmentID = eq.ID
		}
		if _, err := repo.Insert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
