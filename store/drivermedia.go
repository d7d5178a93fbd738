package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/padraicbc/gridapi/models"
)

// GetDriverMedia returns the curated row for a driver, or (nil, nil) when
// none exists. Absence is a normal state, not an error.
func (s *Store) GetDriverMedia(ctx context.Context, driverID string) (*models.DriverMedia, error) {
	media := &models.DriverMedia{}
	err := s.db.NewSelect().Model(media).
		Where("driver_id = ?", driverID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return media, nil
}

// ListDriverMedia returns every curated row keyed by driver id, for the
// drivers-page join.
func (s *Store) ListDriverMedia(ctx context.Context) (map[string]models.DriverMedia, error) {
	var rows []models.DriverMedia
	if err := s.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, err
	}

	out := make(map[string]models.DriverMedia, len(rows))
	for _, m := range rows {
		out[m.DriverID] = m
	}
	return out, nil
}

// UpsertDriverMedia inserts or updates a driver's curated row in one
// statement keyed on driver_id, so concurrent admin saves cannot race a
// read-then-write pair.
func (s *Store) UpsertDriverMedia(ctx context.Context, media *models.DriverMedia) error {
	media.DriverID = strings.TrimSpace(media.DriverID)
	if media.DriverID == "" {
		return &ValidationError{Field: "driver_id"}
	}

	_, err := s.db.NewInsert().Model(media).
		On("CONFLICT (driver_id) DO UPDATE").
		Set("number = EXCLUDED.number").
		Set("team = EXCLUDED.team").
		Set("image_url = EXCLUDED.image_url").
		Set("car_image_url = EXCLUDED.car_image_url").
		Exec(ctx)
	return err
}
