// Package f1api is a read-only client for a Jolpica/Ergast compatible
// race-statistics service. Every query is scoped to a season.
//
// Failure policy: pages must render a shell even with no data, so every
// method degrades to an empty result on transport or decode failure and
// records a diagnostic instead of returning an error.
package f1api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Client queries the stats service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a Client for the given base URL, e.g.
// "https://api.jolpi.ca/ergast/f1".
func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// Schedule returns a season's races ordered by round ascending.
func (c *Client) Schedule(ctx context.Context, season int) []Race {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf("/%d.json", season), &env); err != nil {
		c.log.Warn("fetch schedule failed", zap.Int("season", season), zap.Error(err))
		return nil
	}
	if env.MRData.RaceTable == nil {
		return nil
	}
	return env.MRData.RaceTable.Races
}

// Drivers returns the season's entrants.
func (c *Client) Drivers(ctx context.Context, season int) []Driver {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf("/%d/drivers.json", season), &env); err != nil {
		c.log.Warn("fetch drivers failed", zap.Int("season", season), zap.Error(err))
		return nil
	}
	if env.MRData.DriverTable == nil {
		return nil
	}
	return env.MRData.DriverTable.Drivers
}

// Constructors returns the season's teams.
func (c *Client) Constructors(ctx context.Context, season int) []Constructor {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf("/%d/constructors.json", season), &env); err != nil {
		c.log.Warn("fetch constructors failed", zap.Int("season", season), zap.Error(err))
		return nil
	}
	if env.MRData.ConstructorTable == nil {
		return nil
	}
	return env.MRData.ConstructorTable.Constructors
}

// DriverStandings returns the championship order for drivers, as ranked
// by the upstream.
func (c *Client) DriverStandings(ctx context.Context, season int) []DriverStanding {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf("/%d/driverStandings.json", season), &env); err != nil {
		c.log.Warn("fetch driver standings failed", zap.Int("season", season), zap.Error(err))
		return nil
	}
	st := env.MRData.StandingsTable
	if st == nil || len(st.StandingsLists) == 0 {
		return nil
	}
	return st.StandingsLists[0].DriverStandings
}

// ConstructorStandings returns the championship order for teams.
func (c *Client) ConstructorStandings(ctx context.Context, season int) []ConstructorStanding {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf("/%d/constructorStandings.json", season), &env); err != nil {
		c.log.Warn("fetch constructor standings failed", zap.Int("season", season), zap.Error(err))
		return nil
	}
	st := env.MRData.StandingsTable
	if st == nil || len(st.StandingsLists) == 0 {
		return nil
	}
	return st.StandingsLists[0].ConstructorStandings
}

// RaceResult returns the classified result for one round, or nil when the
// round has not been run yet (or the upstream has no record of it).
func (c *Client) RaceResult(ctx context.Context, season, round int) *Race {
	var env envelope
	if err := c.get(ctx, fmt.Sprintf("/%d/%d/results.json", season, round), &env); err != nil {
		c.log.Warn("fetch race result failed",
			zap.Int("season", season), zap.Int("round", round), zap.Error(err))
		return nil
	}
	rt := env.MRData.RaceTable
	if rt == nil || len(rt.Races) == 0 {
		return nil
	}
	return &rt.Races[0]
}

func (c *Client) get(ctx context.Context, path string, out *envelope) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
