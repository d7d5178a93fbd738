package f1api

// Wire types mirror the Jolpica/Ergast JSON. Numeric fields arrive as
// strings (round, points, lat/long) and stay strings until a view needs
// them parsed.

// Location is a circuit's place on the map.
type Location struct {
	Lat      string `json:"lat"`
	Long     string `json:"long"`
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

// Circuit identifies a track within a season's schedule.
type Circuit struct {
	CircuitID   string   `json:"circuitId"`
	CircuitName string   `json:"circuitName"`
	URL         string   `json:"url"`
	Location    Location `json:"Location"`
}

// Session is a dated practice/qualifying/sprint slot.
type Session struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Driver is an entrant as the stats service describes them.
type Driver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	Code            string `json:"code"`
	URL             string `json:"url"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
}

// Constructor is a team entry for a season.
type Constructor struct {
	ConstructorID string `json:"constructorId"`
	URL           string `json:"url"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
}

// Race is one round of a season's schedule. Session blocks are optional;
// older seasons omit them entirely.
type Race struct {
	Round          string   `json:"round"`
	RaceName       string   `json:"raceName"`
	URL            string   `json:"url"`
	Date           string   `json:"date"`
	Time           string   `json:"time,omitempty"`
	Circuit        Circuit  `json:"Circuit"`
	FirstPractice  *Session `json:"FirstPractice,omitempty"`
	SecondPractice *Session `json:"SecondPractice,omitempty"`
	ThirdPractice  *Session `json:"ThirdPractice,omitempty"`
	Qualifying     *Session `json:"Qualifying,omitempty"`
	Sprint         *Session `json:"Sprint,omitempty"`

	// Results is populated only on the per-round results endpoint.
	Results []Result `json:"Results,omitempty"`
}

// Result is a single classified finisher of a race.
type Result struct {
	Number      string      `json:"number"`
	Position    string      `json:"position"`
	Points      string      `json:"points"`
	Grid        string      `json:"grid"`
	Laps        string      `json:"laps"`
	Status      string      `json:"status"`
	Driver      Driver      `json:"Driver"`
	Constructor Constructor `json:"Constructor"`
	Time        *ResultTime `json:"Time,omitempty"`
}

// ResultTime is the finishing time of a classified runner.
type ResultTime struct {
	Millis string `json:"millis"`
	Time   string `json:"time"`
}

// DriverStanding ranks a driver in the championship. Position order is
// the upstream's; callers must not re-sort.
type DriverStanding struct {
	Position     string        `json:"position"`
	PositionText string        `json:"positionText"`
	Points       string        `json:"points"`
	Wins         string        `json:"wins"`
	Driver       Driver        `json:"Driver"`
	Constructors []Constructor `json:"Constructors"`
}

// ConstructorStanding ranks a team in the championship.
type ConstructorStanding struct {
	Position     string      `json:"position"`
	PositionText string      `json:"positionText"`
	Points       string      `json:"points"`
	Wins         string      `json:"wins"`
	Constructor  Constructor `json:"Constructor"`
}

// envelope is the fixed MRData wrapper every endpoint nests its table in.
type envelope struct {
	MRData struct {
		RaceTable *struct {
			Season string `json:"season"`
			Races  []Race `json:"Races"`
		} `json:"RaceTable"`
		DriverTable *struct {
			Drivers []Driver `json:"Drivers"`
		} `json:"DriverTable"`
		ConstructorTable *struct {
			Constructors []Constructor `json:"Constructors"`
		} `json:"ConstructorTable"`
		StandingsTable *struct {
			StandingsLists []struct {
				Season               string                `json:"season"`
				Round                string                `json:"round"`
				DriverStandings      []DriverStanding      `json:"DriverStandings"`
				ConstructorStandings []ConstructorStanding `json:"ConstructorStandings"`
			} `json:"StandingsLists"`
		} `json:"StandingsTable"`
	} `json:"MRData"`
}
