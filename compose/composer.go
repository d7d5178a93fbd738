// Package compose builds the per-page read-models: it fans out to the
// stats service and the content store, joins the pieces on their shared
// ids, and derives the display fields. Every page op waits for all of its
// fetches and always returns a structurally valid model; a dead upstream
// yields empty sections, not a failed page.
package compose

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/gridapi/f1api"
	"github.com/padraicbc/gridapi/models"
	"github.com/padraicbc/gridapi/store"
)

// Composer composes view models for one configured season.
type Composer struct {
	season int
	stats  *f1api.Client
	store  *store.Store
	laps   map[string]int
	log    *zap.Logger

	// now is swappable for next-race tests.
	now func() time.Time
}

// New creates a Composer. laps may be nil when no lap table is available;
// affected fields are simply omitted.
func New(season int, stats *f1api.Client, st *store.Store, laps map[string]int, log *zap.Logger) *Composer {
	return &Composer{
		season: season,
		stats:  stats,
		store:  st,
		laps:   laps,
		log:    log,
		now:    time.Now,
	}
}

// Home composes the landing page: top-5 slices of both standings, the
// next race off the schedule and the latest three articles, all fetched
// in parallel.
func (c *Composer) Home(ctx context.Context) HomeView {
	var (
		drivers  []f1api.DriverStanding
		teams    []f1api.ConstructorStanding
		schedule []f1api.Race
		news     []models.NewsArticle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		drivers = c.stats.DriverStandings(gctx, c.season)
		return nil
	})
	g.Go(func() error {
		teams = c.stats.ConstructorStandings(gctx, c.season)
		return nil
	})
	g.Go(func() error {
		schedule = c.stats.Schedule(gctx, c.season)
		return nil
	})
	g.Go(func() error {
		news = c.latestNews(gctx, 3)
		return nil
	})
	_ = g.Wait()

	return HomeView{
		Season:               c.season,
		NextRace:             nextRace(schedule, c.now()),
		DriverStandings:      driverRows(topN(drivers, 5)),
		ConstructorStandings: constructorRows(topN(teams, 5)),
		News:                 news,
	}
}

// Drivers left-joins the season's entrants with their curated media rows.
func (c *Composer) Drivers(ctx context.Context) DriversView {
	var (
		drivers []f1api.Driver
		media   map[string]models.DriverMedia
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		drivers = c.stats.Drivers(gctx, c.season)
		return nil
	})
	g.Go(func() error {
		var err error
		media, err = c.store.ListDriverMedia(gctx)
		if err != nil {
			c.log.Warn("list driver media failed", zap.Error(err))
			media = nil
		}
		return nil
	})
	_ = g.Wait()

	return DriversView{Season: c.season, Drivers: mergeDrivers(drivers, media)}
}

// Teams lists the season's constructors.
func (c *Composer) Teams(ctx context.Context) TeamsView {
	constructors := c.stats.Constructors(ctx, c.season)

	teams := make([]TeamView, len(constructors))
	for i, t := range constructors {
		teams[i] = TeamView{
			TeamID:      t.ConstructorID,
			Name:        t.Name,
			Nationality: t.Nationality,
			URL:         t.URL,
		}
	}
	return TeamsView{Season: c.season, Teams: teams}
}

// Schedule composes the calendar with start times, weekend sessions and
// lap counts joined from the bundled table.
func (c *Composer) Schedule(ctx context.Context) ScheduleView {
	races := c.stats.Schedule(ctx, c.season)
	now := c.now()

	rows := make([]ScheduleRow, len(races))
	for i, r := range races {
		start, tba, _ := raceStart(r)
		round, _ := strconv.Atoi(r.Round)
		rows[i] = ScheduleRow{
			Round:       round,
			Name:        r.RaceName,
			CircuitID:   r.Circuit.CircuitID,
			CircuitName: r.Circuit.CircuitName,
			Locality:    r.Circuit.Location.Locality,
			Country:     r.Circuit.Location.Country,
			StartsAt:    start,
			DateText:    displayDate(start),
			TimeTBA:     tba,
			Ended:       !start.IsZero() && !start.After(now),
			Laps:        c.laps[r.Circuit.CircuitID],
			Sessions:    sessionTimes(r),
		}
	}
	return ScheduleView{Season: c.season, Races: rows}
}

// Circuits projects circuits out of the schedule and aggregates the
// country/locality stats over the projection.
func (c *Composer) Circuits(ctx context.Context) CircuitsView {
	schedule := c.stats.Schedule(ctx, c.season)

	circuits := projectCircuits(schedule, c.laps)
	countries, localities, tally := aggregateCountries(circuits)

	return CircuitsView{
		Season:        c.season,
		Circuits:      circuits,
		TotalEvents:   len(circuits),
		CountryCount:  countries,
		LocalityCount: localities,
		Countries:     tally,
	}
}

// Standings fetches both championship tables in parallel and returns them
// in full, in upstream order.
func (c *Composer) Standings(ctx context.Context) StandingsView {
	var (
		drivers []f1api.DriverStanding
		teams   []f1api.ConstructorStanding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		drivers = c.stats.DriverStandings(gctx, c.season)
		return nil
	})
	g.Go(func() error {
		teams = c.stats.ConstructorStandings(gctx, c.season)
		return nil
	})
	_ = g.Wait()

	return StandingsView{
		Season:       c.season,
		Drivers:      driverRows(drivers),
		Constructors: constructorRows(teams),
	}
}

// News lists articles newest first. A store failure degrades to an empty
// list so the page still renders.
func (c *Composer) News(ctx context.Context, limit int) []models.NewsArticle {
	return c.latestNews(ctx, limit)
}

// NewsArticle returns one article; store.ErrNotFound passes through so
// the handler can render a distinct not-found state.
func (c *Composer) NewsArticle(ctx context.Context, id int64) (*models.NewsArticle, error) {
	return c.store.GetNews(ctx, id)
}

// RaceResult returns the classified result for a round, nil when the
// round has not been run.
func (c *Composer) RaceResult(ctx context.Context, round int) *f1api.Race {
	return c.stats.RaceResult(ctx, c.season, round)
}

func (c *Composer) latestNews(ctx context.Context, limit int) []models.NewsArticle {
	news, err := c.store.ListNews(ctx, limit)
	if err != nil {
		c.log.Warn("list news failed", zap.Error(err))
		return nil
	}
	return news
}
