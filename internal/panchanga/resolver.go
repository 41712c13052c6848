package panchanga

import (
	"log/slog"
	"strings"

	"github.com/sankalpam/panchanga-api/internal/lookup"
)

// Resolver derives the date-dependent calendar fields (lunar month, season
// and weekday name) from a request date and the lookup tables. These fields
// are computed locally and deliberately override whatever the provider sends.
type Resolver struct {
	tables *lookup.Registry
	logger *slog.Logger
}

// NewResolver creates a resolver over the given tables.
func NewResolver(tables *lookup.Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{tables: tables, logger: logger}
}

// ResolveMonth returns the lunar month whose calendar range contains the
// date. Ranges are inclusive on both ends and may cross the year boundary.
// Returns false for unparseable input or when no range matches.
func (r *Resolver) ResolveMonth(date string) (string, bool) {
	parsed, err := ParseDate(date)
	if err != nil {
		r.logger.Warn("cannot resolve lunar month, bad date",
			slog.String("date", date),
			slog.Any("error", err))
		return "", false
	}

	month, day := int(parsed.Month()), parsed.Day()
	for _, mr := range r.tables.MonthRanges() {
		if mr.Contains(month, day) {
			return mr.Name, true
		}
	}

	r.logger.Warn("no lunar month range matches date", slog.String("date", date))
	return "", false
}

// ResolveSeason returns the season spanning the given lunar month.
// The match is case-insensitive; returns false for an empty or unknown month.
func (r *Resolver) ResolveSeason(month string) (string, bool) {
	if strings.TrimSpace(month) == "" {
		return "", false
	}
	for _, season := range r.tables.Seasons() {
		for _, m := range season.Months {
			if strings.EqualFold(m, month) {
				return season.Name, true
			}
		}
	}

	r.logger.Warn("no season spans lunar month", slog.String("month", month))
	return "", false
}

// ResolveWeekday returns the traditional name for the date's day of week.
// When the Vaasare table has no entry, the upper-case English name is
// propagated instead. Returns false only if the date fails to parse.
func (r *Resolver) ResolveWeekday(date string) (string, bool) {
	parsed, err := ParseDate(date)
	if err != nil {
		r.logger.Warn("cannot resolve weekday, bad date",
			slog.String("date", date),
			slog.Any("error", err))
		return "", false
	}

	weekday := strings.ToUpper(parsed.Weekday().String())
	return r.tables.Get(lookup.CategoryVaasare, weekday), true
}
