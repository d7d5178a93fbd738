package store

import (
	"context"
	"errors"
	"testing"

	"github.com/padraicbc/gridapi/models"
)

func TestGetDriverMediaAbsent(t *testing.T) {
	s := newTestStore(t)

	media, err := s.GetDriverMedia(context.Background(), "max_verstappen")
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if media != nil {
		t.Fatalf("expected nil for absent row, got %+v", media)
	}
}

func TestUpsertDriverMedia(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.UpsertDriverMedia(ctx, &models.DriverMedia{
		DriverID: "lando_norris", Number: "4", Team: "McLaren",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Second save with the same key updates in place.
	err = s.UpsertDriverMedia(ctx, &models.DriverMedia{
		DriverID: "lando_norris", Number: "4", Team: "McLaren",
		ImageURL: "/media/ln.png", CarImageURL: "/media/mcl.png",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.GetDriverMedia(ctx, "lando_norris")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected the row to exist")
	}
	if got.ImageURL != "/media/ln.png" || got.Team != "McLaren" {
		t.Fatalf("upsert not applied: %+v", got)
	}

	rows, err := s.ListDriverMedia(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row after two saves, got %d", len(rows))
	}
}

func TestUpsertDriverMediaValidation(t *testing.T) {
	s := newTestStore(t)

	err := s.UpsertDriverMedia(context.Background(), &models.DriverMedia{DriverID: "  "})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
