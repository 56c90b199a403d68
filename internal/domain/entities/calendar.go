package entities

import "time"

// defaultEventDuration applies when a request has no duration, or the
// placeholder "00:00".
const defaultEventDuration = time.Hour

// CalendarEvent is a maintenance request projected onto the calendar
// timeline. Request points back at the originating request so consumers can
// color-code by stage/overdue-ness and open the detail view.
type CalendarEvent struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Start   time.Time           `json:"start"`
	End     time.Time           `json:"end"`
	Request *MaintenanceRequest `json:"-"`
}

// ToCalendarEvents projects requests with a scheduled date into timed
// events, preserving input order.
//
// Start is the scheduled date at midnight, advanced by the HH:MM scheduled
// time when present. End is start plus the parsed duration, or one hour when
// the duration is absent, "00:00", or unparseable. Requests without a
// scheduled date are skipped.
func ToCalendarEvents(requests []MaintenanceRequest) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(requests))
	for i := range requests {
		req := &requests[i]
		day, ok := ParseDate(req.ScheduledDate)
		if !ok {
			continue
		}

		start := day
		if h, m, ok := ParseClock(req.ScheduledTime); ok {
			start = start.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		}

		end := start.Add(defaultEventDuration)
		if req.Duration != "" && req.Duration != "00:00" {
			if h, m, ok := ParseClock(req.Duration); ok {
				end = start.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
			}
		}

		events = append(events, CalendarEvent{
			ID:      req.ID,
			Title:   req.Subject,
			Start:   start,
			End:     end,
			Request: req,
		})
	}
	return events
}
