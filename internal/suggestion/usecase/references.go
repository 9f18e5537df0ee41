package usecase

import (
	"context"
	"errors"
	"fmt"

	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/repository"
)

// LoadReferences loads the stored reference set for the current registry
// version and embedding model, embedding and storing it when absent.
func (uc *implUseCase) LoadReferences(ctx context.Context) error {
	if uc.embedder == nil {
		return suggestion.ErrModelNotLoaded
	}

	if uc.refRepo != nil {
		set, err := uc.refRepo.LoadReferences(ctx, repository.LoadReferencesOptions{
			Version:    uc.reg.Version,
			Model:      uc.embedder.Model(),
			Categories: uc.reg.Names(),
		})
		switch {
		case err != nil:
			uc.l.Warnf(ctx, "LoadReferences: stored references unavailable, embedding: %v", err)
		case uc.complete(set):
			uc.setReferences(set)
			uc.l.Infof(ctx, "LoadReferences: loaded %d categories for registry %s", len(set), uc.reg.Version)
			return nil
		default:
			uc.l.Infof(ctx, "LoadReferences: stored references incomplete (%d categories), embedding", len(set))
		}
	}

	_, err := uc.SeedReferences(ctx)
	return err
}

// SeedReferences embeds every registry reference phrase, installs the set and
// stores it when a reference repository is configured. It returns the number
// of vectors embedded.
func (uc *implUseCase) SeedReferences(ctx context.Context) (int, error) {
	if uc.embedder == nil {
		return 0, suggestion.ErrModelNotLoaded
	}

	var (
		texts   []string
		vectors []repository.ReferenceVector
	)
	for _, c := range uc.reg.Categories {
		for i, phrase := range c.References {
			texts = append(texts, phrase)
			vectors = append(vectors, repository.ReferenceVector{Category: c.Name, Index: i, Phrase: phrase})
		}
	}

	embeddings, err := uc.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", suggestion.ErrEmbeddingUnavailable, err)
	}
	if len(embeddings) != len(texts) {
		return 0, fmt.Errorf("%w: expected %d embeddings, got %d",
			suggestion.ErrEmbeddingUnavailable, len(texts), len(embeddings))
	}

	kept := vectors[:0]
	for i := range vectors {
		if len(embeddings[i]) == 0 {
			uc.l.Warnf(ctx, "SeedReferences: empty vector for %s[%d], skipping", vectors[i].Category, vectors[i].Index)
			continue
		}
		vectors[i].Vector = embeddings[i]
		kept = append(kept, vectors[i])
	}

	set := buildReferenceSet(uc.reg.Names(), kept)
	if len(set) == 0 {
		return 0, errors.New("no reference vectors")
	}
	uc.setReferences(set)

	if uc.refRepo != nil {
		if err := uc.refRepo.SaveReferences(ctx, repository.SaveReferencesOptions{
			Version: uc.reg.Version,
			Model:   uc.embedder.Model(),
			Vectors: kept,
		}); err != nil {
			uc.l.Warnf(ctx, "SeedReferences: failed to store references (non-fatal): %v", err)
		}
	}

	uc.l.Infof(ctx, "SeedReferences: embedded %d phrases in %d categories", len(kept), len(set))
	return len(kept), nil
}

// complete reports whether set holds every phrase of every registry category.
func (uc *implUseCase) complete(set suggestion.CategoryEmbeddingSet) bool {
	if len(set) != len(uc.reg.Categories) {
		return false
	}
	for i, c := range uc.reg.Categories {
		if set[i].Category != c.Name || len(set[i].Vectors) != len(c.References) {
			return false
		}
	}
	return true
}

// buildReferenceSet groups vectors in the given category order, dropping
// categories without vectors.
func buildReferenceSet(order []string, vectors []repository.ReferenceVector) suggestion.CategoryEmbeddingSet {
	byCategory := make(map[string][][]float32, len(order))
	for _, v := range vectors {
		byCategory[v.Category] = append(byCategory[v.Category], v.Vector)
	}

	set := make(suggestion.CategoryEmbeddingSet, 0, len(order))
	for _, name := range order {
		if vecs := byCategory[name]; len(vecs) > 0 {
			set = append(set, suggestion.CategoryEmbedding{Category: name, Vectors: vecs})
		}
	}
	return set
}
