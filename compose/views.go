package compose

import (
	"time"

	"github.com/padraicbc/gridapi/models"
)

// View models are the composed read-models handed to the rendering
// client, one per page activation. Empty sections are normal renderable
// states, never errors.

// HomeView backs the landing page.
type HomeView struct {
	Season               int                      `json:"season"`
	NextRace             *NextRace                `json:"nextRace,omitempty"`
	DriverStandings      []DriverStandingRow      `json:"driverStandings"`
	ConstructorStandings []ConstructorStandingRow `json:"constructorStandings"`
	News                 []models.NewsArticle     `json:"news"`
}

// NextRace is the first event still ahead of the clock.
type NextRace struct {
	Round       int       `json:"round"`
	Name        string    `json:"name"`
	CircuitName string    `json:"circuitName"`
	Locality    string    `json:"locality"`
	Country     string    `json:"country"`
	StartsAt    time.Time `json:"startsAt"`
	DateText    string    `json:"dateText"`
	TimeTBA     bool      `json:"timeTba,omitempty"`
}

// DriverStandingRow is one championship row. Position, points and wins
// stay as upstream strings; order is the upstream's.
type DriverStandingRow struct {
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	DriverID    string `json:"driverId"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Team        string `json:"team,omitempty"`
}

// ConstructorStandingRow is one team championship row.
type ConstructorStandingRow struct {
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

// StandingsView carries both championship tables; the client picks a tab.
type StandingsView struct {
	Season       int                      `json:"season"`
	Drivers      []DriverStandingRow      `json:"drivers"`
	Constructors []ConstructorStandingRow `json:"constructors"`
}

// DriverView merges an upstream driver with their curated media row.
// Media absence leaves the presentation fields empty.
type DriverView struct {
	DriverID        string `json:"driverId"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	Nationality     string `json:"nationality"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	PermanentNumber string `json:"permanentNumber,omitempty"`
	URL             string `json:"url,omitempty"`

	Number      string `json:"number,omitempty"`
	Team        string `json:"team,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CarImageURL string `json:"carImageUrl,omitempty"`
}

// DriversView backs the drivers page.
type DriversView struct {
	Season  int          `json:"season"`
	Drivers []DriverView `json:"drivers"`
}

// TeamView is a constructor entry.
type TeamView struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	URL         string `json:"url,omitempty"`
}

// TeamsView backs the teams page.
type TeamsView struct {
	Season int        `json:"season"`
	Teams  []TeamView `json:"teams"`
}

// SessionTime is one named slot of a race weekend.
type SessionTime struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time,omitempty"`
}

// ScheduleRow is one round of the calendar.
type ScheduleRow struct {
	Round       int           `json:"round"`
	Name        string        `json:"name"`
	CircuitID   string        `json:"circuitId"`
	CircuitName string        `json:"circuitName"`
	Locality    string        `json:"locality"`
	Country     string        `json:"country"`
	StartsAt    time.Time     `json:"startsAt"`
	DateText    string        `json:"dateText"`
	TimeTBA     bool          `json:"timeTba,omitempty"`
	Ended       bool          `json:"ended"`
	Laps        int           `json:"laps,omitempty"`
	Sessions    []SessionTime `json:"sessions,omitempty"`
}

// ScheduleView backs the schedule page.
type ScheduleView struct {
	Season int           `json:"season"`
	Races  []ScheduleRow `json:"races"`
}

// CircuitView is a circuit projected out of one scheduled event,
// annotated with that event's round, name and date.
type CircuitView struct {
	CircuitID string `json:"circuitId"`
	Name      string `json:"name"`
	Locality  string `json:"locality"`
	Country   string `json:"country"`
	Lat       string `json:"lat,omitempty"`
	Long      string `json:"long,omitempty"`
	URL       string `json:"url,omitempty"`
	Round     int    `json:"round"`
	RaceName  string `json:"raceName"`
	Date      string `json:"date"`
	Laps      int    `json:"laps,omitempty"`
}

// CountryCount is one entry of the per-country event tally.
type CountryCount struct {
	Country string `json:"country"`
	Events  int    `json:"events"`
}

// CircuitsView backs the circuits page. Counts are aggregated over the
// projected entries: one entry per scheduled event, so a circuit hosting
// two rounds appears twice while the distinct counts stay honest.
type CircuitsView struct {
	Season        int            `json:"season"`
	Circuits      []CircuitView  `json:"circuits"`
	TotalEvents   int            `json:"totalEvents"`
	CountryCount  int            `json:"countryCount"`
	LocalityCount int            `json:"localityCount"`
	Countries     []CountryCount `json:"countries"`
}
