package models

import (
	"time"

	"github.com/uptrace/bun"
)

// NewsArticle is an editorial article managed through the admin panel.
// CreatedAt is set by the database, never by the caller.
type NewsArticle struct {
	bun.BaseModel `bun:"table:news,alias:n"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Title    string `bun:"title,notnull" json:"title"`
	Content  string `bun:"content,notnull" json:"content"`
	ImageURL string `bun:"image_url" json:"image_url,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,nullzero,default:current_timestamp" json:"created_at"`
}
