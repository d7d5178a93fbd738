package compose

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/gridapi/f1api"
	"github.com/padraicbc/gridapi/models"
	"github.com/padraicbc/gridapi/store"
)

const homeScheduleJSON = `{
	"MRData": {
		"RaceTable": {
			"Races": [
				{
					"round": "1", "raceName": "Australian Grand Prix", "date": "2026-03-08", "time": "05:00:00Z",
					"Circuit": {"circuitId": "albert_park", "circuitName": "Albert Park Grand Prix Circuit", "Location": {"locality": "Melbourne", "country": "Australia"}}
				},
				{
					"round": "2", "raceName": "Bahrain Grand Prix", "date": "2026-03-15", "time": "15:00:00Z",
					"Circuit": {"circuitId": "bahrain", "circuitName": "Bahrain International Circuit", "Location": {"locality": "Sakhir", "country": "Bahrain"}}
				}
			]
		}
	}
}`

const homeDriverStandingsJSON = `{
	"MRData": {
		"StandingsTable": {
			"StandingsLists": [{
				"DriverStandings": [
					{"position": "1", "points": "25", "wins": "1", "Driver": {"driverId": "d1", "givenName": "A", "familyName": "One"}, "Constructors": [{"name": "T1"}]},
					{"position": "2", "points": "18", "wins": "0", "Driver": {"driverId": "d2", "givenName": "B", "familyName": "Two"}, "Constructors": [{"name": "T2"}]},
					{"position": "3", "points": "15", "wins": "0", "Driver": {"driverId": "d3", "givenName": "C", "familyName": "Three"}, "Constructors": [{"name": "T3"}]},
					{"position": "4", "points": "12", "wins": "0", "Driver": {"driverId": "d4", "givenName": "D", "familyName": "Four"}, "Constructors": [{"name": "T4"}]},
					{"position": "5", "points": "10", "wins": "0", "Driver": {"driverId": "d5", "givenName": "E", "familyName": "Five"}, "Constructors": [{"name": "T5"}]},
					{"position": "6", "points": "8", "wins": "0", "Driver": {"driverId": "d6", "givenName": "F", "familyName": "Six"}, "Constructors": [{"name": "T6"}]}
				]
			}]
		}
	}
}`

const homeConstructorStandingsJSON = `{
	"MRData": {
		"StandingsTable": {
			"StandingsLists": [{
				"ConstructorStandings": [
					{"position": "1", "points": "43", "wins": "1", "Constructor": {"constructorId": "t1", "name": "T1"}}
				]
			}]
		}
	}
}`

const homeDriversJSON = `{
	"MRData": {
		"DriverTable": {
			"Drivers": [
				{"driverId": "d1", "givenName": "A", "familyName": "One", "nationality": "Dutch"},
				{"driverId": "d2", "givenName": "B", "familyName": "Two", "nationality": "British"}
			]
		}
	}
}`

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection so every query sees the same in-memory database.
	sqldb.SetMaxOpenConns(1)
	bdb := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = bdb.Close() })

	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.NewsArticle)(nil),
		(*models.DriverMedia)(nil),
	} {
		if _, err := bdb.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table for %T: %v", model, err)
		}
	}
	return store.New(bdb)
}

func newUpstream(t *testing.T, routes map[string]string) *f1api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return f1api.New(srv.URL, zap.NewNop())
}

func deadUpstream(t *testing.T) *f1api.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return f1api.New(srv.URL, zap.NewNop())
}

func TestHome(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third", "fourth"} {
		if _, err := st.CreateNews(ctx, title, "body of "+title, ""); err != nil {
			t.Fatalf("create news: %v", err)
		}
	}

	stats := newUpstream(t, map[string]string{
		"/2026.json":                      homeScheduleJSON,
		"/2026/driverStandings.json":      homeDriverStandingsJSON,
		"/2026/constructorStandings.json": homeConstructorStandingsJSON,
	})

	c := New(2026, stats, st, DefaultLapCounts, zap.NewNop())
	c.now = func() time.Time { return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) }

	view := c.Home(ctx)

	if view.Season != 2026 {
		t.Fatalf("expected season 2026, got %d", view.Season)
	}
	if len(view.DriverStandings) != 5 {
		t.Fatalf("expected top-5 driver slice, got %d rows", len(view.DriverStandings))
	}
	if view.DriverStandings[0].Position != "1" || view.DriverStandings[0].Points != "25" {
		t.Fatalf("unexpected leader row: %+v", view.DriverStandings[0])
	}
	if len(view.ConstructorStandings) != 1 {
		t.Fatalf("expected 1 constructor row, got %d", len(view.ConstructorStandings))
	}
	if view.NextRace == nil || view.NextRace.Round != 2 {
		t.Fatalf("expected round 2 next, got %+v", view.NextRace)
	}
	if len(view.News) != 3 {
		t.Fatalf("expected latest 3 articles, got %d", len(view.News))
	}
	if view.News[0].Title != "fourth" {
		t.Fatalf("expected newest article first, got %q", view.News[0].Title)
	}
}

func TestHomeAllUpstreamsDown(t *testing.T) {
	// Schedule fetch fails and the content store is gone: the home view
	// must still come back structurally valid with empty sections.
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	bdb := bun.NewDB(sqldb, sqlitedialect.New())
	_ = bdb.Close()
	brokenStore := store.New(bdb)

	c := New(2026, deadUpstream(t), brokenStore, nil, zap.NewNop())

	view := c.Home(context.Background())
	if view.NextRace != nil {
		t.Fatalf("expected no upcoming race, got %+v", view.NextRace)
	}
	if len(view.DriverStandings) != 0 || len(view.ConstructorStandings) != 0 {
		t.Fatal("expected empty standings sections")
	}
	if len(view.News) != 0 {
		t.Fatal("expected empty news grid")
	}
	if view.Season != 2026 {
		t.Fatalf("expected season to survive, got %d", view.Season)
	}
}

func TestDriversMerge(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.UpsertDriverMedia(ctx, &models.DriverMedia{
		DriverID: "d1", Number: "1", Team: "T1", ImageURL: "/media/d1.png",
	})
	if err != nil {
		t.Fatalf("upsert media: %v", err)
	}

	stats := newUpstream(t, map[string]string{"/2026/drivers.json": homeDriversJSON})
	c := New(2026, stats, st, nil, zap.NewNop())

	view := c.Drivers(ctx)
	if len(view.Drivers) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(view.Drivers))
	}
	if view.Drivers[0].Team != "T1" || view.Drivers[0].ImageURL != "/media/d1.png" {
		t.Fatalf("expected media fields merged, got %+v", view.Drivers[0])
	}
	if view.Drivers[1].Team != "" {
		t.Fatalf("expected defaults without media, got %+v", view.Drivers[1])
	}
}

func TestCircuitsAggregation(t *testing.T) {
	stats := newUpstream(t, map[string]string{"/2026.json": homeScheduleJSON})
	c := New(2026, stats, newTestStore(t), DefaultLapCounts, zap.NewNop())

	view := c.Circuits(context.Background())
	if view.TotalEvents != 2 {
		t.Fatalf("expected 2 events, got %d", view.TotalEvents)
	}
	if view.CountryCount != 2 || view.LocalityCount != 2 {
		t.Fatalf("unexpected aggregation: %+v", view)
	}
	if view.Circuits[0].Laps != 58 {
		t.Fatalf("expected albert_park lap count, got %d", view.Circuits[0].Laps)
	}
	if len(view.Countries) != 2 || view.Countries[0].Country != "Australia" {
		t.Fatalf("expected sorted country tally, got %+v", view.Countries)
	}
}

func TestScheduleEndedFlag(t *testing.T) {
	stats := newUpstream(t, map[string]string{"/2026.json": homeScheduleJSON})
	c := New(2026, stats, newTestStore(t), nil, zap.NewNop())
	c.now = func() time.Time { return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) }

	view := c.Schedule(context.Background())
	if len(view.Races) != 2 {
		t.Fatalf("expected 2 races, got %d", len(view.Races))
	}
	if !view.Races[0].Ended {
		t.Fatal("expected round 1 to be flagged ended")
	}
	if view.Races[1].Ended {
		t.Fatal("round 2 has not happened yet")
	}
}

func TestStandingsBothTables(t *testing.T) {
	stats := newUpstream(t, map[string]string{
		"/2026/driverStandings.json":      homeDriverStandingsJSON,
		"/2026/constructorStandings.json": homeConstructorStandingsJSON,
	})
	c := New(2026, stats, newTestStore(t), nil, zap.NewNop())

	view := c.Standings(context.Background())
	if len(view.Drivers) != 6 {
		t.Fatalf("expected the full driver table, got %d rows", len(view.Drivers))
	}
	if len(view.Constructors) != 1 {
		t.Fatalf("expected 1 constructor row, got %d", len(view.Constructors))
	}
}
