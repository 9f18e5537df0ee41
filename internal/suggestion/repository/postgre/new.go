package postgre

import (
	"database/sql"
	"fmt"

	"task-suggestion-service/internal/suggestion/repository"
	"task-suggestion-service/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Repository is the PostgreSQL implementation of the verb and user repositories.
type Repository interface {
	repository.VerbRepository
	repository.UserRepository
}

// New creates a new PostgreSQL-backed repository for the suggestion domain.
func New(db *sql.DB, l log.Logger) Repository {
	if db == nil {
		panic("suggestion/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn prefixes log lines with the repository method.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("suggestion.repository.postgre.%s", method)
}
