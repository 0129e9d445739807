package database

import (
	"context"
	"sort"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"learnmate/services"
)

// Repository implements services.Repository on top of SurrealDB. Every
// method issues exactly one statement; there are no cross-document
// transactions anywhere in the system.
type Repository struct {
	db *DB
}

var _ services.Repository = (*Repository)(nil)

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// queryRows runs a single SELECT-like statement and returns the rows of
// its first result set.
func queryRows[T any](ctx context.Context, db *DB, sql string, vars map[string]any) ([]T, error) {
	results, err := surrealdb.Query[[]T](ctx, db.DB, sql, vars)
	if err != nil {
		return nil, err
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}
	return (*results)[0].Result, nil
}

// ListCollections reports the table names currently present in the
// database, sorted for stable output.
func (r *Repository) ListCollections(ctx context.Context) ([]string, error) {
	type dbInfo struct {
		Tables map[string]any `json:"tables"`
	}

	results, err := surrealdb.Query[dbInfo](ctx, r.db.DB, "INFO FOR DB", nil)
	if err != nil {
		return nil, err
	}
	if results == nil || len(*results) == 0 {
		return []string{}, nil
	}

	tables := make([]string, 0, len((*results)[0].Result.Tables))
	for name := range (*results)[0].Result.Tables {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables, nil
}
