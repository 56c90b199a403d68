package entities

import (
	"testing"
	"time"
)

func TestToCalendarEvents(t *testing.T) {
	t.Run("timed event with duration", func(t *testing.T) {
		events := ToCalendarEvents([]MaintenanceRequest{{
			ID:            "r1",
			Subject:       "Oil change",
			ScheduledDate: "2026-03-15",
			ScheduledTime: "14:00",
			Duration:      "02:30",
		}})
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		ev := events[0]
		if ev.ID != "r1" || ev.Title != "Oil change" {
			t.Fatalf("unexpected event: %+v", ev)
		}
		wantStart := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
		if !ev.Start.Equal(wantStart) {
			t.Fatalf("expected start %v, got %v", wantStart, ev.Start)
		}
		if !ev.End.Equal(wantStart.Add(2*time.Hour + 30*time.Minute)) {
			t.Fatalf("unexpected end %v", ev.End)
		}
	})

	t.Run("no time means midnight", func(t *testing.T) {
		events := ToCalendarEvents([]MaintenanceRequest{{
			ID:            "r1",
			ScheduledDate: "2026-03-15",
		}})
		wantStart := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if !events[0].Start.Equal(wantStart) {
			t.Fatalf("expected midnight start, got %v", events[0].Start)
		}
	})

	t.Run("missing or zero duration defaults to one hour", func(t *testing.T) {
		for _, duration := range []string{"", "00:00", "junk"} {
			events := ToCalendarEvents([]MaintenanceRequest{{
				ID:            "r1",
				ScheduledDate: "2026-03-15",
				ScheduledTime: "09:00",
				Duration:      duration,
			}})
			if got := events[0].End.Sub(events[0].Start); got != time.Hour {
				t.Fatalf("duration %q: expected 1h event, got %v", duration, got)
			}
		}
	})

	t.Run("unscheduled requests are skipped", func(t *testing.T) {
		events := ToCalendarEvents([]MaintenanceRequest{
			{ID: "r1"},
			{ID: "r2", ScheduledDate: "2026-03-15"},
			{ID: "r3", ScheduledDate: "soon"},
		})
		if len(events) != 1 || events[0].ID != "r2" {
			t.Fatalf("expected only r2, got %+v", events)
		}
	})

	t.Run("event links back to the request", func(t *testing.T) {
		events := ToCalendarEvents([]MaintenanceRequest{{
			ID:            "r1",
			Stage:         StageInProgress,
			ScheduledDate: "2026-03-15",
		}})
		if events[0].Request == nil || events[0].Request.Stage != StageInProgress {
			t.Fatalf("expected request backlink")
		}
	})

	t.Run("input order preserved", func(t *testing.T) {
		events := ToCalendarEvents([]MaintenanceRequest{
			{ID: "b", ScheduledDate: "2026-03-20"},
			{ID: "a", ScheduledDate: "2026-03-15"},
		})
		if events[0].ID != "b" || events[1].ID != "a" {
			t.Fatalf("expected input order, got %+v", events)
		}
	})
}
