package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/categorizer"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/schedule"
)

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)

// SuggestTitles asks the paraphraser for "title, duration, date, time" lines
// and resolves each line's schedule in the user's timezone.
func (uc *implUseCase) SuggestTitles(ctx context.Context, sc model.Scope, input suggestion.TitleSuggestInput) (suggestion.TitleSuggestOutput, error) {
	text := strings.TrimSpace(input.Input)
	if text == "" {
		return suggestion.TitleSuggestOutput{}, suggestion.ErrEmptyInput
	}
	if uc.llm == nil {
		return suggestion.TitleSuggestOutput{}, suggestion.ErrLLMUnavailable
	}

	loc, err := uc.resolveLocation(ctx, sc)
	if err != nil {
		return suggestion.TitleSuggestOutput{}, err
	}
	now := uc.now().In(loc)

	uc.l.Infof(ctx, "SuggestTitles: user=%s tz=%s input_length=%d", sc.UserID, loc, len(text))

	resp, err := uc.llm.GenerateContent(ctx, buildTitleRequest(text, now, uc.reg.Durations))
	if err != nil {
		uc.l.Errorf(ctx, "SuggestTitles: paraphraser failed: %v", err)
		return suggestion.TitleSuggestOutput{}, fmt.Errorf("%w: %v", suggestion.ErrLLMUnavailable, err)
	}

	raw := resp.Text()
	uc.l.Debugf(ctx, "SuggestTitles: paraphraser returned %q", raw)

	lines := parseTitleLines(raw)
	out := suggestion.TitleSuggestOutput{
		Suggestions: make([]suggestion.TitleSuggestion, 0, len(lines)),
		Timezone:    loc.String(),
	}

	for _, line := range lines {
		res := schedule.Resolve(now, loc, line.Date, line.Time)
		out.Suggestions = append(out.Suggestions, suggestion.TitleSuggestion{
			Title:         line.Title,
			ScheduledDate: res.Date,
			Time:          res.Time,
			Duration:      uc.normalizeDuration(line.Duration),
			Status:        suggestion.StatusNew,
			Repeat:        suggestion.RepeatOnce,
		})
	}

	uc.decorateTitles(ctx, out.Suggestions)
	return out, nil
}

// decorateTitles categorizes titles for verb decoration. It degrades to
// undecorated titles when embeddings are unavailable.
func (uc *implUseCase) decorateTitles(ctx context.Context, titles []suggestion.TitleSuggestion) {
	refs := uc.references()
	if len(titles) == 0 || uc.embedder == nil || len(refs) == 0 {
		return
	}

	texts := make([]string, len(titles))
	for i, t := range titles {
		texts[i] = t.Title
	}

	vecs, err := uc.embedder.Embed(ctx, texts)
	if err != nil || len(vecs) != len(texts) {
		uc.l.Warnf(ctx, "SuggestTitles: skipping categorization (non-fatal): embeddings=%d err=%v", len(vecs), err)
		return
	}

	verbs := uc.newVerbLookup()
	for _, res := range categorizer.CategorizeAll(vecs, refs) {
		if res.Err != nil || res.Category == suggestion.UnknownCategory {
			continue
		}
		titles[res.Index].Category = res.Category
		titles[res.Index].Verbs = verbs.find(ctx, res.Category)
	}
}

func (uc *implUseCase) normalizeDuration(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	if _, err := registry.ParseDuration(label); err != nil {
		return uc.cfg.DefaultDuration
	}
	return label
}

// parseTitleLines splits paraphraser output into lines of up to four
// comma-separated fields. Commas beyond the last three separators belong to
// the title. Missing date and time fields become "null".
func parseTitleLines(raw string) []titleLine {
	var out []titleLine

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")

		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.Trim(strings.TrimSpace(fields[i]), `"'`)
		}

		var tl titleLine
		switch n := len(fields); {
		case n >= 4:
			tl = titleLine{
				Title:    strings.Join(fields[:n-3], ", "),
				Duration: fields[n-3],
				Date:     fields[n-2],
				Time:     fields[n-1],
			}
		case n == 3:
			tl = titleLine{Title: fields[0], Duration: fields[1], Date: fields[2]}
		case n == 2:
			tl = titleLine{Title: fields[0], Duration: fields[1]}
		default:
			tl = titleLine{Title: fields[0]}
		}

		if tl.Title == "" {
			continue
		}
		if tl.Date == "" {
			tl.Date = suggestion.NullExpr
		}
		if tl.Time == "" {
			tl.Time = suggestion.NullExpr
		}
		out = append(out, tl)
	}

	return out
}
