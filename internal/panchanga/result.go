package panchanga

// Source tells apart genuinely extracted provider data from the fixed
// fallback record. Callers that care about fidelity should check it; the
// fields themselves are always fully populated either way.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// Request identifies a single find query after input validation. Date keeps
// the caller's original encoding; Time is 24-hour or AM/PM clock time.
type Request struct {
	City     string
	Lat      float64
	Lng      float64
	Timezone string
	Date     string
	Time     string
}

// Result is the full calendar record for one request. It is constructed fresh
// per request and never mutated after being returned.
type Result struct {
	City string `json:"city"`
	Date string `json:"date"`
	Time string `json:"time"`

	Samvatsaram string `json:"samvatsaram"`    // year name in the 60-year cycle
	Ayanam      string `json:"ayanam"`         // solar half-year
	Ruthu       string `json:"ruthuvu"`        // season
	Maasam      string `json:"maasam"`         // lunar month
	Paksham     string `json:"paksham"`        // lunar fortnight
	Tithi       string `json:"tithi"`          // lunar day
	Vaaram      string `json:"vaaram"`         // weekday, traditional name
	Nakshatram  string `json:"nakshatram"`     // lunar mansion
	Rasi        string `json:"rasi,omitempty"` // zodiac sign, fallback only

	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`
	ValidUntil string `json:"valid_until"`

	Source Source `json:"source"`
}

// FallbackResult returns the fixed record served whenever the provider is
// unreachable or its response cannot be parsed. Only the echoed city, date
// and time vary per request.
func FallbackResult(city, date, timeOfDay string) Result {
	return Result{
		City: city,
		Date: date,
		Time: timeOfDay,

		Samvatsaram: "Pingala",
		Ayanam:      "Uttarayanam",
		Ruthu:       "Vasantha Ruthu",
		Maasam:      "Phalguna",
		Paksham:     "Krishna Paksham",
		Tithi:       "Ashtami",
		Vaaram:      "Soma Vaasaram (Monday)",
		Nakshatram:  "Purva Phalguni",
		Rasi:        "Simha (Leo)",

		Sunrise:    "06:18",
		Sunset:     "18:35",
		ValidUntil: date + "T23:59:59",

		Source: SourceFallback,
	}
}
