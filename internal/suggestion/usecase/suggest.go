package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/schedule"
	"task-suggestion-service/pkg/gcalendar"
)

// Suggest segments the input, categorizes each phrase and expands the
// categories into a bounded list of scheduled suggestions.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input suggestion.SuggestInput) (suggestion.SuggestOutput, error) {
	text := strings.TrimSpace(input.Input)
	if text == "" {
		return suggestion.SuggestOutput{}, suggestion.ErrEmptyInput
	}

	total := input.Total
	if total == 0 {
		total = uc.cfg.DefaultTotal
	}
	if total < 1 || total > suggestion.MaxTotal {
		return suggestion.SuggestOutput{}, suggestion.ErrInvalidTotal
	}

	refs := uc.references()
	if uc.embedder == nil || len(refs) == 0 {
		return suggestion.SuggestOutput{}, suggestion.ErrModelNotLoaded
	}

	loc, err := uc.resolveLocation(ctx, sc)
	if err != nil {
		return suggestion.SuggestOutput{}, err
	}

	out := suggestion.SuggestOutput{Suggestions: []suggestion.Suggestion{}, Timezone: loc.String()}

	uc.l.Infof(ctx, "Suggest: user=%s tz=%s total=%d input_length=%d", sc.UserID, loc, total, len(text))

	phrases, err := uc.segmenter.Segment(text)
	if err != nil {
		uc.l.Errorf(ctx, "Suggest: segmentation failed: %v", err)
		return out, nil
	}
	if len(phrases) == 0 {
		return out, nil
	}

	texts := make([]string, len(phrases))
	for i, p := range phrases {
		texts[i] = p.Text
	}

	vecs, err := uc.embedder.Embed(ctx, texts)
	if err != nil {
		uc.l.Errorf(ctx, "Suggest: embedding failed: %v", err)
		return suggestion.SuggestOutput{}, fmt.Errorf("%w: %v", suggestion.ErrEmbeddingUnavailable, err)
	}
	if len(vecs) != len(texts) {
		return suggestion.SuggestOutput{}, fmt.Errorf("%w: expected %d embeddings, got %d",
			suggestion.ErrEmbeddingUnavailable, len(texts), len(vecs))
	}

	group := uc.group(ctx, phrases, vecs, refs)
	uc.l.Infof(ctx, "Suggest: %d phrases in %d categories %v", len(phrases), group.Len(), group.Categories())

	suggestions := uc.generator.Distribute(group, loc, total)

	verbs := uc.newVerbLookup()
	for i := range suggestions {
		suggestions[i].Verbs = verbs.find(ctx, suggestions[i].Category)
	}

	if input.AddToCalendar {
		uc.exportToCalendar(ctx, suggestions, loc)
	}

	out.Suggestions = suggestions
	return out, nil
}

// exportToCalendar creates one event per suggestion. Failures are logged and
// leave CalendarLink empty.
func (uc *implUseCase) exportToCalendar(ctx context.Context, suggestions []suggestion.Suggestion, loc *time.Location) {
	if uc.calendar == nil {
		uc.l.Warnf(ctx, "exportToCalendar: calendar is not configured, skipping %d suggestions", len(suggestions))
		return
	}

	for i := range suggestions {
		s := &suggestions[i]

		start, err := time.ParseInLocation(schedule.DateTimeLayout, s.ScheduledDateTime, loc)
		if err != nil {
			uc.l.Warnf(ctx, "exportToCalendar: bad schedule %q for %q: %v", s.ScheduledDateTime, s.Title, err)
			continue
		}

		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     s.Title,
			Description: fmt.Sprintf("Suggested %s task", s.Category),
			StartTime:   start,
			EndTime:     start.Add(uc.durationOf(s.Duration)),
			Timezone:    loc.String(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "exportToCalendar: event creation failed for %q (non-fatal): %v", s.Title, err)
			continue
		}
		s.CalendarLink = event.HtmlLink
	}
}

func (uc *implUseCase) durationOf(label string) time.Duration {
	if d, err := registry.ParseDuration(label); err == nil {
		return d
	}
	if d, err := registry.ParseDuration(uc.cfg.DefaultDuration); err == nil {
		return d
	}
	return 30 * time.Minute
}
