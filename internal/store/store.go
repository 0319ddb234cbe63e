// Package store is the persistence layer: raw SQL over a pgx pool, one file
// per entity. Constraint violations surface as the typed errors in
// internal/domain so callers never inspect SQLSTATE codes themselves.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db    *pgxpool.Pool
	cache *accountCache
}

func NewStore(connString string, cacheEntries int64) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	cache, err := newAccountCache(cacheEntries)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize account cache: %w", err)
	}

	return &Store{db: pool, cache: cache}, nil
}

// NewStoreWithPool wraps an existing pool; the caller keeps ownership of it.
func NewStoreWithPool(pool *pgxpool.Pool, cacheEntries int64) (*Store, error) {
	cache, err := newAccountCache(cacheEntries)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize account cache: %w", err)
	}
	return &Store{db: pool, cache: cache}, nil
}

// Pool exposes the underlying pool for service-layer transactions.
func (s *Store) Pool() *pgxpool.Pool {
	return s.db
}

func (s *Store) Close() {
	s.db.Close()
}
