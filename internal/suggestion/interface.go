package suggestion

import (
	"context"

	"task-suggestion-service/internal/model"
)

// UseCase defines the business logic interface for the suggestion domain.
type UseCase interface {
	// Suggest segments, categorizes and expands free text into scheduled suggestions.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// SuggestTitles asks the paraphraser for titles and resolves each line's schedule.
	SuggestTitles(ctx context.Context, sc model.Scope, input TitleSuggestInput) (TitleSuggestOutput, error)

	// LoadReferences builds the category reference set; Suggest fails with
	// ErrModelNotLoaded until it succeeds.
	LoadReferences(ctx context.Context) error

	// Ready reports whether the reference set is loaded.
	Ready() bool
}
