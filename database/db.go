package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

type DB struct {
	*surrealdb.DB
}

// New connects to SurrealDB, authenticates when credentials are set, and
// selects the namespace/database. Tables are created implicitly on first
// insert, so there is no migration step.
func New(ctx context.Context, url, namespace, database, user, pass string) (*DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if user != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{Username: user, Password: pass}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := db.Use(ctx, namespace, database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.DB.Close(ctx)
}
