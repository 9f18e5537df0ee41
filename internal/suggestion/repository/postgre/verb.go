package postgre

import (
	"context"
	"database/sql"
	"errors"

	"task-suggestion-service/internal/model"
	repo "task-suggestion-service/internal/suggestion/repository"
)

const verbColumns = `id, name, COALESCE(icon, ''), COALESCE(color, ''), is_deleted, created_at, updated_at`

// FindVerb returns the verb with the given name.
// Returns zero-value Verb (ID == "") when not found.
func (r *implRepository) FindVerb(ctx context.Context, name string) (model.Verb, error) {
	const query = `SELECT ` + verbColumns + ` FROM verbs WHERE name = $1 AND is_deleted = FALSE LIMIT 1`

	var v model.Verb
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&v.ID, &v.Name, &v.Icon, &v.Color, &v.IsDeleted, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Verb{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindVerb"), err)
		return model.Verb{}, repo.ErrFailedToGet
	}
	return v, nil
}

// UpsertVerb inserts a verb or refreshes icon/color of the existing row.
func (r *implRepository) UpsertVerb(ctx context.Context, opt repo.UpsertVerbOptions) (model.Verb, error) {
	const query = `
		INSERT INTO verbs (name, icon, color, is_deleted, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), FALSE, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE
		SET icon = COALESCE(EXCLUDED.icon, verbs.icon),
		    color = COALESCE(EXCLUDED.color, verbs.color),
		    is_deleted = FALSE,
		    updated_at = NOW()
		RETURNING ` + verbColumns

	var v model.Verb
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Icon, opt.Color).Scan(
		&v.ID, &v.Name, &v.Icon, &v.Color, &v.IsDeleted, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertVerb"), err)
		return model.Verb{}, repo.ErrFailedToUpsert
	}
	return v, nil
}
