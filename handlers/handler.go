package handlers

import (
	"github.com/uptrace/bun"

	"github.com/padraicbc/gridapi/compose"
	"github.com/padraicbc/gridapi/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db       *bun.DB
	composer *compose.Composer
	store    *store.Store
	images   *store.ImageStore
	JWTKey   []byte
}

// New creates a Handler with the given dependencies.
func New(db *bun.DB, composer *compose.Composer, st *store.Store, images *store.ImageStore, jwtKey []byte) *Handler {
	return &Handler{
		db:       db,
		composer: composer,
		store:    st,
		images:   images,
		JWTKey:   jwtKey,
	}
}
