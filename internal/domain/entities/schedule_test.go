package entities

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, ok := ParseDate("2026-03-15")
		if !ok {
			t.Fatalf("expected ok")
		}
		if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
			t.Fatalf("unexpected date: %v", d)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "15/03/2026", "garbage"} {
			if _, ok := ParseDate(s); ok {
				t.Fatalf("expected %q to fail", s)
			}
		}
	})
}

func TestParseClock(t *testing.T) {
	h, m, ok := ParseClock("14:30")
	if !ok || h != 14 || m != 30 {
		t.Fatalf("expected 14:30, got %d:%d ok=%v", h, m, ok)
	}
	if _, _, ok := ParseClock("not a time"); ok {
		t.Fatalf("expected failure")
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("past date open stage", func(t *testing.T) {
		req := MaintenanceRequest{Stage: StageNew, ScheduledDate: "2026-03-14"}
		if !IsOverdue(req, today) {
			t.Fatalf("expected overdue")
		}
	})

	t.Run("same day is not overdue", func(t *testing.T) {
		req := MaintenanceRequest{Stage: StageInProgress, ScheduledDate: "2026-03-15"}
		if IsOverdue(req, today) {
			t.Fatalf("expected not overdue")
		}
	})

	t.Run("future date", func(t *testing.T) {
		req := MaintenanceRequest{Stage: StageNew, ScheduledDate: "2026-03-16"}
		if IsOverdue(req, today) {
			t.Fatalf("expected not overdue")
		}
	})

	t.Run("terminal stages never overdue", func(t *testing.T) {
		for _, stage := range []Stage{StageRepaired, StageScrap} {
			req := MaintenanceRequest{Stage: stage, ScheduledDate: "2020-01-01"}
			if IsOverdue(req, today) {
				t.Fatalf("expected %s not overdue", stage)
			}
		}
	})

	t.Run("missing or unparseable date", func(t *testing.T) {
		for _, date := range []string{"", "not-a-date"} {
			req := MaintenanceRequest{Stage: StageNew, ScheduledDate: date}
			if IsOverdue(req, today) {
				t.Fatalf("expected %q not overdue", date)
			}
		}
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		req := MaintenanceRequest{Stage: StageNew, ScheduledDate: "2026-03-14"}
		endOfDay := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
		startOfDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if IsOverdue(req, endOfDay) != IsOverdue(req, startOfDay) {
			t.Fatalf("overdue verdict should be date-only")
		}
	})
}

func TestStageHelpers(t *testing.T) {
	if !StageNew.Open() || !StageInProgress.Open() {
		t.Fatalf("New and In Progress should be open")
	}
	if !StageRepaired.Terminal() || !StageScrap.Terminal() {
		t.Fatalf("Repaired and Scrap should be terminal")
	}
	if Stage("Done").Valid() {
		t.Fatalf("unknown stage should be invalid")
	}
	for _, s := range Stages {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
}
