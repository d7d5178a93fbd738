// Package store is the content-store client: row access to the news and
// driver_media collections plus the image blob bucket.
package store

import "github.com/uptrace/bun"

// Store wraps the content database.
type Store struct {
	db *bun.DB
}

// New creates a Store over the given connection.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}
