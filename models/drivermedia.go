package models

import "github.com/uptrace/bun"

// DriverMedia holds locally-curated presentation fields for a driver,
// keyed by the upstream driver id. Identity and biographical fields stay
// with the stats service; this row only owns how a driver is displayed.
type DriverMedia struct {
	bun.BaseModel `bun:"table:driver_media,alias:dm"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	DriverID    string `bun:"driver_id,notnull,unique" json:"driver_id"`
	Number      string `bun:"number" json:"number,omitempty"`
	Team        string `bun:"team" json:"team,omitempty"`
	ImageURL    string `bun:"image_url" json:"image_url,omitempty"`
	CarImageURL string `bun:"car_image_url" json:"car_image_url,omitempty"`
}
