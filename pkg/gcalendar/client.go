package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// ErrInvalidWindow is returned when an event does not end after it starts.
var ErrInvalidWindow = errors.New("gcalendar: event end must be after start")

// Client exports events to one Google account's calendars.
type Client struct {
	service *calendar.Service
}

var _ ICalendar = (*Client)(nil)

// New builds a client from the credentials file in cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}

	ts, err := tokenSource(ctx, data, cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP builds a client over a pre-authorized HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts one event and returns its link.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if req.StartTime.IsZero() || !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidWindow
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, toCalendarEvent(req)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func toCalendarEvent(req CreateEventRequest) *calendar.Event {
	at := func(t time.Time) *calendar.EventDateTime {
		return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: req.Timezone}
	}
	return &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       at(req.StartTime),
		End:         at(req.EndTime),
		Recurrence:  req.Recurrence,
		ColorId:     req.ColorID,
	}
}
