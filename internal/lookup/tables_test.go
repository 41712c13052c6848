package lookup

import (
	"strings"
	"testing"
)

func TestParse_EmbeddedTables(t *testing.T) {
	reg, err := Parse(embeddedTables)
	if err != nil {
		t.Fatalf("Parse embedded tables: %v", err)
	}

	if got := len(reg.MonthRanges()); got != 12 {
		t.Errorf("month ranges = %d, want 12", got)
	}
	if got := len(reg.Seasons()); got != 6 {
		t.Errorf("seasons = %d, want 6", got)
	}

	// Each season feeds from exactly two months and every month belongs to
	// exactly one season.
	feeders := make(map[string]int)
	for _, season := range reg.Seasons() {
		if len(season.Months) != 2 {
			t.Errorf("season %s has %d months, want 2", season.Name, len(season.Months))
		}
		for _, m := range season.Months {
			feeders[m]++
		}
	}
	for _, mr := range reg.MonthRanges() {
		if feeders[mr.Name] != 1 {
			t.Errorf("month %s appears in %d seasons, want 1", mr.Name, feeders[mr.Name])
		}
	}
}

func TestParse_RejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not toml",
			data:    "{\"months\": []}",
			wantErr: "parse lookup tables",
		},
		{
			name: "malformed range",
			data: `
[[months]]
name = "Chaitramu"
range = "15/03"

[[seasons]]
name = "Vasantha"
months = ["Chaitramu", "Vaisakhamu"]
`,
			wantErr: "bad range",
		},
		{
			name: "day out of bounds",
			data: `
[[months]]
name = "Chaitramu"
range = "42/03-14/04"

[[seasons]]
name = "Vasantha"
months = ["Chaitramu", "Vaisakhamu"]
`,
			wantErr: "out of bounds",
		},
		{
			name: "gap in coverage",
			data: `
[[months]]
name = "FirstHalf"
range = "01/01-30/06"

[[seasons]]
name = "OnlySeason"
months = ["FirstHalf", "MissingHalf"]
`,
			wantErr: "month ranges",
		},
		{
			name: "season with one month",
			data: `
[[months]]
name = "FirstHalf"
range = "01/01-30/06"

[[months]]
name = "SecondHalf"
range = "01/07-31/12"

[[seasons]]
name = "OnlySeason"
months = ["FirstHalf"]
`,
			wantErr: "spans 1 months",
		},
		{
			name:    "empty tables",
			data:    "",
			wantErr: "no month ranges",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/tables.toml"); err == nil {
		t.Error("Load() with missing file succeeded, want error")
	}
}
