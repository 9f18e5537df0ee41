package http

import (
	"strings"

	"github.com/google/uuid"

	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
)

// --- Request DTOs ---

type suggestReq struct {
	Input         string `json:"input"`
	UserID        string `json:"user_id"`
	Timezone      string `json:"timezone,omitempty"`
	Total         int    `json:"total,omitempty"`
	AddToCalendar bool   `json:"add_to_calendar,omitempty"`
}

func (r suggestReq) validate() error {
	return validateCommon(r.Input, r.UserID)
}

func (r suggestReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID, Timezone: strings.TrimSpace(r.Timezone)}
}

func (r suggestReq) toInput() suggestion.SuggestInput {
	return suggestion.SuggestInput{
		Input:         r.Input,
		Total:         r.Total,
		AddToCalendar: r.AddToCalendar,
	}
}

// ---

type titleSuggestReq struct {
	Input    string `json:"input"`
	UserID   string `json:"user_id"`
	Timezone string `json:"timezone,omitempty"`
}

func (r titleSuggestReq) validate() error {
	return validateCommon(r.Input, r.UserID)
}

func (r titleSuggestReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID, Timezone: strings.TrimSpace(r.Timezone)}
}

func (r titleSuggestReq) toInput() suggestion.TitleSuggestInput {
	return suggestion.TitleSuggestInput{Input: r.Input}
}

func validateCommon(input, userID string) error {
	if strings.TrimSpace(input) == "" || userID == "" {
		return errMissingFields
	}
	if _, err := uuid.Parse(userID); err != nil {
		return errInvalidUserID
	}
	return nil
}

// --- Response DTOs ---

type verbResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func newVerbResp(v *model.Verb) *verbResp {
	if v == nil {
		return nil
	}
	return &verbResp{ID: v.ID, Name: v.Name, Icon: v.Icon, Color: v.Color}
}

type suggestionResp struct {
	Title             string    `json:"title"`
	ScheduledDateTime string    `json:"scheduledDateTime"`
	Duration          string    `json:"duration"`
	Status            string    `json:"status"`
	Repeat            string    `json:"repeat"`
	Verbs             *verbResp `json:"verbs"`
	IsDeleted         bool      `json:"isDeleted"`
	Category          string    `json:"category"`
	CalendarLink      string    `json:"calendarLink,omitempty"`
}

type suggestResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Timezone    string           `json:"timezone"`
}

func (h *handler) newSuggestResp(o suggestion.SuggestOutput) suggestResp {
	items := make([]suggestionResp, len(o.Suggestions))
	for i, s := range o.Suggestions {
		items[i] = suggestionResp{
			Title:             s.Title,
			ScheduledDateTime: s.ScheduledDateTime,
			Duration:          s.Duration,
			Status:            s.Status,
			Repeat:            s.Repeat,
			Verbs:             newVerbResp(s.Verbs),
			IsDeleted:         s.IsDeleted,
			Category:          s.Category,
			CalendarLink:      s.CalendarLink,
		}
	}
	return suggestResp{Suggestions: items, Timezone: o.Timezone}
}

type titleSuggestionResp struct {
	Title         string    `json:"title"`
	ScheduledDate string    `json:"scheduledDate"`
	Time          string    `json:"time"`
	Duration      string    `json:"duration"`
	Status        string    `json:"status"`
	Repeat        string    `json:"repeat"`
	Verbs         *verbResp `json:"verbs"`
	IsDeleted     bool      `json:"isDeleted"`
}

type titleSuggestResp struct {
	Suggestions []titleSuggestionResp `json:"suggestions"`
	Timezone    string                `json:"timezone"`
}

func (h *handler) newTitleSuggestResp(o suggestion.TitleSuggestOutput) titleSuggestResp {
	items := make([]titleSuggestionResp, len(o.Suggestions))
	for i, s := range o.Suggestions {
		items[i] = titleSuggestionResp{
			Title:         s.Title,
			ScheduledDate: s.ScheduledDate,
			Time:          s.Time,
			Duration:      s.Duration,
			Status:        s.Status,
			Repeat:        s.Repeat,
			Verbs:         newVerbResp(s.Verbs),
			IsDeleted:     s.IsDeleted,
		}
	}
	return titleSuggestResp{Suggestions: items, Timezone: o.Timezone}
}
