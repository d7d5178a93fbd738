package compose

import (
	"sort"
	"strconv"
	"time"

	"github.com/padraicbc/gridapi/f1api"
	"github.com/padraicbc/gridapi/models"
)

// raceStart resolves a race's start instant. The upstream sends the date
// and time as separate strings; a missing time means midnight UTC and is
// flagged as TBA for display.
func raceStart(r f1api.Race) (start time.Time, tba bool, ok bool) {
	if r.Time != "" {
		t, err := time.Parse(time.RFC3339, r.Date+"T"+r.Time)
		if err == nil {
			return t, false, true
		}
	}
	t, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, false, false
	}
	return t, true, true
}

// nextRace picks the first event starting strictly after now. Schedules
// arrive round-ascending, so the first hit wins. All-past means nil.
func nextRace(schedule []f1api.Race, now time.Time) *NextRace {
	for _, r := range schedule {
		start, tba, ok := raceStart(r)
		if !ok || !start.After(now) {
			continue
		}
		round, _ := strconv.Atoi(r.Round)
		return &NextRace{
			Round:       round,
			Name:        r.RaceName,
			CircuitName: r.Circuit.CircuitName,
			Locality:    r.Circuit.Location.Locality,
			Country:     r.Circuit.Location.Country,
			StartsAt:    start,
			DateText:    displayDate(start),
			TimeTBA:     tba,
		}
	}
	return nil
}

// mergeDrivers left-joins upstream drivers with curated media rows.
// Exactly one view row per input driver; missing media leaves the
// presentation fields empty.
func mergeDrivers(drivers []f1api.Driver, media map[string]models.DriverMedia) []DriverView {
	out := make([]DriverView, len(drivers))
	for i, d := range drivers {
		dv := DriverView{
			DriverID:        d.DriverID,
			GivenName:       d.GivenName,
			FamilyName:      d.FamilyName,
			Nationality:     d.Nationality,
			DateOfBirth:     d.DateOfBirth,
			PermanentNumber: d.PermanentNumber,
			URL:             d.URL,
		}
		if m, ok := media[d.DriverID]; ok {
			dv.Number = m.Number
			dv.Team = m.Team
			dv.ImageURL = m.ImageURL
			dv.CarImageURL = m.CarImageURL
		}
		out[i] = dv
	}
	return out
}

// projectCircuits pulls one circuit entry out of each scheduled event.
// Entries are deliberately not deduplicated by circuit id: a double-header
// circuit shows up once per round it hosts.
func projectCircuits(schedule []f1api.Race, laps map[string]int) []CircuitView {
	out := make([]CircuitView, len(schedule))
	for i, r := range schedule {
		round, _ := strconv.Atoi(r.Round)
		out[i] = CircuitView{
			CircuitID: r.Circuit.CircuitID,
			Name:      r.Circuit.CircuitName,
			Locality:  r.Circuit.Location.Locality,
			Country:   r.Circuit.Location.Country,
			Lat:       r.Circuit.Location.Lat,
			Long:      r.Circuit.Location.Long,
			URL:       r.Circuit.URL,
			Round:     round,
			RaceName:  r.RaceName,
			Date:      r.Date,
			Laps:      laps[r.Circuit.CircuitID],
		}
	}
	return out
}

// aggregateCountries computes the distinct country/locality counts and a
// sorted per-country event tally over already-projected circuits. Pure
// aggregation, no external query.
func aggregateCountries(circuits []CircuitView) (countries, localities int, tally []CountryCount) {
	perCountry := map[string]int{}
	localitySet := map[string]struct{}{}
	for _, c := range circuits {
		perCountry[c.Country]++
		localitySet[c.Locality] = struct{}{}
	}

	tally = make([]CountryCount, 0, len(perCountry))
	for country, n := range perCountry {
		tally = append(tally, CountryCount{Country: country, Events: n})
	}
	sort.Slice(tally, func(i, j int) bool { return tally[i].Country < tally[j].Country })

	return len(perCountry), len(localitySet), tally
}

// driverRows flattens standings into view rows. Order is preserved as
// given; the team label is the first listed constructor.
func driverRows(standings []f1api.DriverStanding) []DriverStandingRow {
	out := make([]DriverStandingRow, len(standings))
	for i, s := range standings {
		row := DriverStandingRow{
			Position:    s.Position,
			Points:      s.Points,
			Wins:        s.Wins,
			DriverID:    s.Driver.DriverID,
			Name:        s.Driver.GivenName + " " + s.Driver.FamilyName,
			Nationality: s.Driver.Nationality,
		}
		if len(s.Constructors) > 0 {
			row.Team = s.Constructors[0].Name
		}
		out[i] = row
	}
	return out
}

func constructorRows(standings []f1api.ConstructorStanding) []ConstructorStandingRow {
	out := make([]ConstructorStandingRow, len(standings))
	for i, s := range standings {
		out[i] = ConstructorStandingRow{
			Position:    s.Position,
			Points:      s.Points,
			Wins:        s.Wins,
			TeamID:      s.Constructor.ConstructorID,
			Name:        s.Constructor.Name,
			Nationality: s.Constructor.Nationality,
		}
	}
	return out
}

// sessionTimes collects the optional weekend slots in running order.
func sessionTimes(r f1api.Race) []SessionTime {
	var out []SessionTime
	add := func(name string, s *f1api.Session) {
		if s == nil || s.Date == "" {
			return
		}
		out = append(out, SessionTime{Name: name, Date: s.Date, Time: s.Time})
	}
	add("Practice 1", r.FirstPractice)
	add("Practice 2", r.SecondPractice)
	add("Practice 3", r.ThirdPractice)
	add("Sprint", r.Sprint)
	add("Qualifying", r.Qualifying)
	return out
}

func displayDate(t time.Time) string {
	return t.Format("2 January 2006")
}

func topN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
