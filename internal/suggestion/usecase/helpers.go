package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/categorizer"
)

// resolveLocation picks the request timezone, then the user's, then the default.
func (uc *implUseCase) resolveLocation(ctx context.Context, sc model.Scope) (*time.Location, error) {
	tz := strings.TrimSpace(sc.Timezone)

	if sc.UserID != "" && uc.userRepo != nil {
		user, err := uc.userRepo.FindUser(ctx, sc.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		if user.IsZero() {
			return nil, suggestion.ErrUserNotFound
		}
		if tz == "" {
			tz = user.TimeZone
		}
	}

	if tz == "" {
		tz = uc.cfg.DefaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		uc.l.Warnf(ctx, "resolveLocation: invalid timezone %q: %v", tz, err)
		return nil, suggestion.ErrInvalidTimezone
	}
	return loc, nil
}

// group classifies each vector and groups the phrases by category. Failed,
// unknown and unregistered classifications are logged and left out.
func (uc *implUseCase) group(ctx context.Context, phrases []suggestion.TaskPhrase, vecs [][]float32, refs suggestion.CategoryEmbeddingSet) *suggestion.CategorizedGroup {
	g := suggestion.NewCategorizedGroup()

	for _, res := range categorizer.CategorizeAll(vecs, refs) {
		phrase := phrases[res.Index]
		if res.Err != nil {
			uc.l.Warnf(ctx, "categorize: phrase %d %q failed: %v", res.Index, phrase.Text, res.Err)
			continue
		}
		if res.Category == suggestion.UnknownCategory {
			uc.l.Debugf(ctx, "categorize: phrase %d %q is unknown", res.Index, phrase.Text)
			continue
		}
		if _, ok := uc.reg.Category(res.Category); !ok {
			uc.l.Warnf(ctx, "categorize: category %q is not registered", res.Category)
			continue
		}
		g.Add(res.Category, phrase)
	}

	return g
}

// verbLookup resolves category verbs once per request.
type verbLookup struct {
	uc    *implUseCase
	cache map[string]*model.Verb
}

func (uc *implUseCase) newVerbLookup() *verbLookup {
	return &verbLookup{uc: uc, cache: make(map[string]*model.Verb)}
}

// find returns the verb named after category, or nil when absent or on error.
func (v *verbLookup) find(ctx context.Context, category string) *model.Verb {
	if v.uc.verbRepo == nil || category == "" {
		return nil
	}
	if verb, ok := v.cache[category]; ok {
		return verb
	}

	var out *model.Verb
	verb, err := v.uc.verbRepo.FindVerb(ctx, category)
	switch {
	case err != nil:
		v.uc.l.Warnf(ctx, "verbLookup: failed to find verb %q (non-fatal): %v", category, err)
	case verb.IsZero():
		v.uc.l.Debugf(ctx, "verbLookup: no verb for %q", category)
	default:
		out = &verb
	}

	v.cache[category] = out
	return out
}
