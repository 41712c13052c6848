// Package lookup provides the static translation tables that turn provider
// vocabulary into display vocabulary, plus the typed month-range and season
// tables used to derive calendar fields from a date.
//
// The registry is built once at startup and is read-only afterwards, so it is
// safe for concurrent use without locking.
package lookup

import "strings"

// Category names as they appear in the tables file.
//
// Maasam, Ruthu and Vaaram are reference sheets carried from the source data:
// extraction derives those three fields from the request date, so only custom
// table files that route provider tokens through them will consult them.
const (
	CategorySamvatsaram = "Samvatsaram" // no table shipped; lookups pass through
	CategoryMaasam      = "Maasam"
	CategoryRuthu       = "Ruthu"
	CategoryAyanam      = "Ayanam"
	CategoryTithi       = "Tithi"
	CategoryPaksham     = "Paksham"
	CategoryVaaram      = "Vaaram"
	CategoryNakshatram  = "Nakshatram"
	CategoryVaasare     = "Vaasare" // English weekday -> traditional name
)

// MonthRange maps a lunar month name to the span of calendar days it covers.
// Day/month pairs are inclusive on both ends. A range whose start month is
// greater than its end month crosses the year boundary (mid-December to
// mid-January).
type MonthRange struct {
	Name       string
	StartDay   int
	StartMonth int
	EndDay     int
	EndMonth   int
}

// Wraps reports whether the range crosses the year boundary.
func (m MonthRange) Wraps() bool {
	return m.StartMonth > m.EndMonth
}

// Contains reports whether the given calendar month/day falls inside the range.
func (m MonthRange) Contains(month, day int) bool {
	if m.Wraps() {
		if month > m.StartMonth || month < m.EndMonth {
			return true
		}
	} else {
		if month > m.StartMonth && month < m.EndMonth {
			return true
		}
	}
	if month == m.StartMonth && day >= m.StartDay {
		return true
	}
	if month == m.EndMonth && day <= m.EndDay {
		return true
	}
	return false
}

// Season maps a season name to the two lunar months it spans.
type Season struct {
	Name   string
	Months []string
}

// Registry holds all lookup categories and rule tables.
type Registry struct {
	categories map[string]map[string]string // category -> normalized key -> display value
	months     []MonthRange
	seasons    []Season
}

// Get returns the display value for key in the named category. The key is
// trimmed and lowercased before lookup. If the category does not exist or
// holds no entry for the key, the original key is returned unchanged; a
// lookup miss is never an error.
func (r *Registry) Get(category, key string) string {
	entries, ok := r.categories[category]
	if !ok {
		return key
	}
	if mapped, ok := entries[normalizeKey(key)]; ok {
		return mapped
	}
	return key
}

// Has reports whether the named category was present in the tables file.
func (r *Registry) Has(category string) bool {
	_, ok := r.categories[category]
	return ok
}

// MonthRanges returns the lunar month range table in file order.
func (r *Registry) MonthRanges() []MonthRange {
	return r.months
}

// Seasons returns the season table in file order.
func (r *Registry) Seasons() []Season {
	return r.seasons
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
