package lookup

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed data/tables.toml
var embeddedTables []byte

// tablesFile is the on-disk TOML shape for lookup data.
//
// Ranges keep the original "dd/mm-dd/mm" notation, e.g. "15/02-14/03" for
// 15 February through 14 March.
type tablesFile struct {
	Categories map[string]map[string]string `toml:"categories"`
	Months     []monthEntry                 `toml:"months"`
	Seasons    []seasonEntry                `toml:"seasons"`
}

type monthEntry struct {
	Name  string `toml:"name"`
	Range string `toml:"range"`
}

type seasonEntry struct {
	Name   string   `toml:"name"`
	Months []string `toml:"months"`
}

// Load builds a Registry from the TOML tables file at path. An empty path
// loads the embedded default tables.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Parse(embeddedTables)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lookup tables: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lookup tables %s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes and validates TOML table data.
//
// Validation is strict: the month ranges must cover every day of the year
// exactly once, and every month must belong to exactly one season. Bad table
// data is a deployment error, so Parse fails fast instead of resolving
// ambiguously at request time.
func Parse(data []byte) (*Registry, error) {
	var file tablesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lookup tables: %w", err)
	}

	reg := &Registry{
		categories: make(map[string]map[string]string, len(file.Categories)),
	}
	for name, entries := range file.Categories {
		normalized := make(map[string]string, len(entries))
		for key, value := range entries {
			normalized[normalizeKey(key)] = value
		}
		reg.categories[name] = normalized
	}

	for _, entry := range file.Months {
		mr, err := parseMonthRange(entry)
		if err != nil {
			return nil, err
		}
		reg.months = append(reg.months, mr)
	}
	for _, entry := range file.Seasons {
		reg.seasons = append(reg.seasons, Season{Name: entry.Name, Months: entry.Months})
	}

	if err := reg.validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// parseMonthRange parses "dd/mm-dd/mm" into a MonthRange.
func parseMonthRange(entry monthEntry) (MonthRange, error) {
	if entry.Name == "" {
		return MonthRange{}, errors.New("month entry missing name")
	}
	parts := strings.Split(entry.Range, "-")
	if len(parts) != 2 {
		return MonthRange{}, fmt.Errorf("month %s: bad range %q", entry.Name, entry.Range)
	}
	startDay, startMonth, err := parseDayMonth(parts[0])
	if err != nil {
		return MonthRange{}, fmt.Errorf("month %s: %w", entry.Name, err)
	}
	endDay, endMonth, err := parseDayMonth(parts[1])
	if err != nil {
		return MonthRange{}, fmt.Errorf("month %s: %w", entry.Name, err)
	}
	return MonthRange{
		Name:       entry.Name,
		StartDay:   startDay,
		StartMonth: startMonth,
		EndDay:     endDay,
		EndMonth:   endMonth,
	}, nil
}

func parseDayMonth(s string) (day, month int, err error) {
	fields := strings.Split(strings.TrimSpace(s), "/")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("bad day/month %q", s)
	}
	day, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad day in %q", s)
	}
	month, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad month in %q", s)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("day/month %q out of bounds", s)
	}
	return day, month, nil
}

func (r *Registry) validate() error {
	var errs []error

	if len(r.months) == 0 {
		errs = append(errs, errors.New("no month ranges defined"))
	}
	if len(r.seasons) == 0 {
		errs = append(errs, errors.New("no seasons defined"))
	}

	// Every calendar day must match exactly one month range. Walking a full
	// non-leap year catches both gaps and overlaps.
	if len(r.months) > 0 {
		day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		for day.Year() == 2025 {
			matches := 0
			for _, mr := range r.months {
				if mr.Contains(int(day.Month()), day.Day()) {
					matches++
				}
			}
			if matches != 1 {
				errs = append(errs, fmt.Errorf("date %s matches %d month ranges, want 1",
					day.Format("01-02"), matches))
				break
			}
			day = day.AddDate(0, 0, 1)
		}
	}

	// Each season spans exactly two months; each month belongs to exactly one season.
	seasonsByMonth := make(map[string]int)
	for _, season := range r.seasons {
		if len(season.Months) != 2 {
			errs = append(errs, fmt.Errorf("season %s spans %d months, want 2",
				season.Name, len(season.Months)))
		}
		for _, m := range season.Months {
			seasonsByMonth[normalizeKey(m)]++
		}
	}
	for _, mr := range r.months {
		if n := seasonsByMonth[normalizeKey(mr.Name)]; n != 1 {
			errs = append(errs, fmt.Errorf("month %s appears in %d seasons, want 1", mr.Name, n))
		}
	}

	return errors.Join(errs...)
}
