package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// CountTablesDB reports how many of the board's tables exist in the public schema.
func (r *tablesRepository) CountTablesDB() (int, error) {
	var count int

	err := r.db.Get(&count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name IN ('posts', 'comments', 'guest_messages', 'profiles')
		`)

	if err != nil {
		return 0, fmt.Errorf("error counting database tables: %w", err)
	}

	return count, nil
}
