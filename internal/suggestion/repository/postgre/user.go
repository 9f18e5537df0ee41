package postgre

import (
	"context"
	"database/sql"
	"errors"

	"task-suggestion-service/internal/model"
	repo "task-suggestion-service/internal/suggestion/repository"
)

// FindUser returns the user with the given ID.
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) FindUser(ctx context.Context, id string) (model.User, error) {
	const query = `
		SELECT id, COALESCE(name, ''), COALESCE(time_zone, '')
		FROM users
		WHERE id = $1 AND is_deleted = FALSE
		LIMIT 1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.TimeZone)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
