package response

import (
	"time"

	"manutencao_xpto/internal/domain/entities"
)

// Event colors, matching the board legend: blue for new, amber for in
// progress, green for repaired, red for anything overdue.
const (
	colorDefault    = "#714B67"
	colorOverdue    = "#B91C1C"
	colorRepaired   = "#15803D"
	colorInProgress = "#D97706"
	colorNew        = "#2563EB"
)

// CalendarEventResponse is a calendar event enriched with the color coding
// and the details a calendar view needs without a second lookup.
type CalendarEventResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Stage      string    `json:"stage"`
	Equipment  string    `json:"equipment"`
	Technician string    `json:"technician"`
	Priority   int       `json:"priority"`
	Overdue    bool      `json:"overdue"`
	Color      string    `json:"color"`
}

func FromCalendarEvent(ev entities.CalendarEvent, today time.Time) CalendarEventResponse {
	req := ev.Request
	overdue := entities.IsOverdue(*req, today)
	return CalendarEventResponse{
		ID:         ev.ID,
		Title:      ev.Title,
		Start:      ev.Start,
		End:        ev.End,
		Stage:      string(req.Stage),
		Equipment:  req.Equipment,
		Technician: req.Technician,
		Priority:   req.Priority,
		Overdue:    overdue,
		Color:      eventColor(req.Stage, overdue),
	}
}

func FromCalendarEvents(events []entities.CalendarEvent, today time.Time) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, FromCalendarEvent(ev, today))
	}
	return out
}

func eventColor(stage entities.Stage, overdue bool) string {
	if overdue {
		return colorOverdue
	}
	switch stage {
	case entities.StageRepaired:
		return colorRepaired
	case entities.StageInProgress:
		return colorInProgress
	case entities.StageNew:
		return colorNew
	default:
		return colorDefault
	}
}
