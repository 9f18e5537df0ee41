package repository

import (
	"context"

	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
)

// VerbRepository reads the verb records suggestions are decorated with.
type VerbRepository interface {
	// FindVerb returns the non-deleted verb named after a category, or a zero Verb.
	FindVerb(ctx context.Context, name string) (model.Verb, error)
	// UpsertVerb creates the verb if missing and returns the stored record.
	UpsertVerb(ctx context.Context, opt UpsertVerbOptions) (model.Verb, error)
}

// UserRepository reads users.
type UserRepository interface {
	// FindUser returns the non-deleted user, or a zero User when not found.
	FindUser(ctx context.Context, id string) (model.User, error)
}

// ReferenceRepository persists category reference vectors.
type ReferenceRepository interface {
	// LoadReferences returns the stored set for a registry version and
	// embedding model, ordered by opt.Categories. An empty set means nothing
	// is stored yet.
	LoadReferences(ctx context.Context, opt LoadReferencesOptions) (suggestion.CategoryEmbeddingSet, error)
	// SaveReferences stores vectors and removes those of other versions or models.
	SaveReferences(ctx context.Context, opt SaveReferencesOptions) error
}
