package compose

// DefaultLapCounts maps circuit ids to race distance in laps. The stats
// service does not expose lap counts, so this table is bundled and joined
// in at composition time; a missing entry just omits the field. Injected
// into the Composer so it can be swapped without touching merge logic.
var DefaultLapCounts = map[string]int{
	"albert_park":   58,
	"bahrain":       57,
	"shanghai":      56,
	"suzuka":        53,
	"miami":         57,
	"imola":         63,
	"monaco":        78,
	"catalunya":     66,
	"villeneuve":    70,
	"red_bull_ring": 71,
	"silverstone":   52,
	"hungaroring":   70,
	"spa":           44,
	"zandvoort":     72,
	"monza":         53,
	"baku":          51,
	"marina_bay":    62,
	"americas":      56,
	"rodriguez":     71,
	"interlagos":    71,
	"vegas":         50,
	"losail":        57,
	"yas_marina":    58,
}
