package qdrant

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/repository"
	pkgQdrant "task-suggestion-service/pkg/qdrant"
)

// referenceNamespace scopes deterministic point IDs.
var referenceNamespace = uuid.MustParse("3f0c7a52-1d7e-4b8a-9c61-5e2f4a8d9b10")

// pointID is stable for a (version, model, category, index) tuple so
// re-seeding overwrites instead of duplicating.
func pointID(version, model, category string, index int) string {
	return uuid.NewSHA1(referenceNamespace, fmt.Appendf(nil, "%s:%s:%s:%d", version, model, category, index)).String()
}

// LoadReferences reads every stored vector for opt.Version and opt.Model.
func (r *implRepository) LoadReferences(ctx context.Context, opt repository.LoadReferencesOptions) (suggestion.CategoryEmbeddingSet, error) {
	filter := pkgQdrant.Filter{Must: []pkgQdrant.Condition{
		pkgQdrant.MatchKey(payloadVersion, opt.Version),
		pkgQdrant.MatchKey(payloadModel, opt.Model),
	}}

	points, err := r.client.ScrollAll(ctx, r.collectionName, pkgQdrant.ScrollRequest{
		Filter:      &filter,
		Limit:       scrollPageSize,
		WithPayload: true,
		WithVector:  true,
	})
	if errors.Is(err, pkgQdrant.ErrNotFound) {
		r.l.Infof(ctx, "qdrant repository: collection %s does not exist yet", r.collectionName)
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to scroll references: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	type indexed struct {
		index  int
		vector []float32
	}
	byCategory := make(map[string][]indexed)
	for _, p := range points {
		category, ok := p.Payload[payloadCategory].(string)
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: point %v has no category, skipping", p.ID)
			continue
		}
		if len(p.Vector) == 0 {
			r.l.Warnf(ctx, "qdrant repository: point %v has no vector, skipping", p.ID)
			continue
		}
		// JSON numbers decode as float64.
		idx, _ := p.Payload[payloadIndex].(float64)
		byCategory[category] = append(byCategory[category], indexed{index: int(idx), vector: p.Vector})
	}

	set := make(suggestion.CategoryEmbeddingSet, 0, len(opt.Categories))
	for _, name := range opt.Categories {
		refs := byCategory[name]
		if len(refs) == 0 {
			continue
		}
		sort.Slice(refs, func(i, j int) bool { return refs[i].index < refs[j].index })
		vectors := make([][]float32, len(refs))
		for i, ref := range refs {
			vectors[i] = ref.vector
		}
		set = append(set, suggestion.CategoryEmbedding{Category: name, Vectors: vectors})
	}

	r.l.Infof(ctx, "qdrant repository: loaded %d reference vectors across %d categories (version=%s model=%s)",
		len(points), len(set), opt.Version, opt.Model)
	return set, nil
}

// SaveReferences creates the collection if needed, upserts the vectors and
// drops points left over from other registry versions or models.
func (r *implRepository) SaveReferences(ctx context.Context, opt repository.SaveReferencesOptions) error {
	if len(opt.Vectors) == 0 {
		return nil
	}

	size := len(opt.Vectors[0].Vector)
	points := make([]pkgQdrant.Point, 0, len(opt.Vectors))
	for _, v := range opt.Vectors {
		if len(v.Vector) != size || size == 0 {
			return repository.ErrVectorSize
		}
		points = append(points, pkgQdrant.Point{
			ID:     pointID(opt.Version, opt.Model, v.Category, v.Index),
			Vector: v.Vector,
			Payload: map[string]interface{}{
				payloadVersion:  opt.Version,
				payloadModel:    opt.Model,
				payloadCategory: v.Category,
				payloadIndex:    v.Index,
				payloadPhrase:   v.Phrase,
			},
		})
	}

	err := r.client.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: size, Distance: "Cosine"},
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to ensure collection: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert references: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	// Stale means "other version OR other model"; one delete per clause.
	for _, key := range []struct{ name, value string }{
		{payloadVersion, opt.Version},
		{payloadModel, opt.Model},
	} {
		stale := pkgQdrant.Filter{MustNot: []pkgQdrant.Condition{pkgQdrant.MatchKey(key.name, key.value)}}
		if err := r.client.DeletePointsByFilter(ctx, r.collectionName, stale); err != nil {
			// Stale points are filtered out on load anyway.
			r.l.Warnf(ctx, "qdrant repository: failed to delete stale references by %s: %v", key.name, err)
		}
	}

	r.l.Infof(ctx, "qdrant repository: saved %d reference vectors (version=%s model=%s)", len(points), opt.Version, opt.Model)
	return nil
}
