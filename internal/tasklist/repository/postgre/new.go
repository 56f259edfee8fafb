package postgre

import (
	"database/sql"
	"fmt"

	"mindlyst/internal/tasklist/repository"
	pkgLog "mindlyst/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a new PostgreSQL-backed Repository for the task list.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("tasklist/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tasklist/repository/postgre.%s", method)
}
