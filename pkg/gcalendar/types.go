package gcalendar

import (
	"context"
	"time"
)

// ICalendar is the subset of the Calendar API used for exporting suggestions.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string   // IANA name, e.g. "America/New_York"
	Recurrence  []string // RRULE lines; empty for a one-off event
	ColorID     string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
