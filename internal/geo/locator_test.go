package geo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestLocator points both Google endpoints at a local test server.
func newTestLocator(apiKey, geocodeURL, timezoneURL string) *Locator {
	l := &Locator{
		client:      resty.New().SetTimeout(2 * time.Second),
		apiKey:      apiKey,
		geocodeURL:  geocodeURL,
		timezoneURL: timezoneURL,
		logger:      quietLogger(),
		now:         func() time.Time { return time.Unix(1767225600, 0) },
	}
	return l
}

func TestCoordinates_FromAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "Madurai" {
			t.Errorf("address = %q, want Madurai", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 9.9252, "lng": 78.1198}}}]
		}`))
	}))
	defer server.Close()

	l := newTestLocator("test-key", server.URL, server.URL)
	coords := l.Coordinates(context.Background(), "Madurai")

	if coords.Lat != 9.9252 || coords.Lng != 78.1198 {
		t.Errorf("Coordinates() = %+v, want {9.9252 78.1198}", coords)
	}
}

func TestCoordinates_APIStatusNotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key", "results": []}`))
	}))
	defer server.Close()

	l := newTestLocator("test-key", server.URL, server.URL)
	coords := l.Coordinates(context.Background(), "Chennai")

	// Falls back to the static table entry for Chennai.
	if coords != (Coordinates{13.0827, 80.2707}) {
		t.Errorf("Coordinates() = %+v, want Chennai fallback", coords)
	}
}

func TestCoordinates_NoAPIKey(t *testing.T) {
	tests := []struct {
		name string
		city string
		want Coordinates
	}{
		{"known city", "Mumbai", Coordinates{19.0760, 72.8777}},
		{"case-insensitive", "LONDON", Coordinates{51.5074, -0.1278}},
		{"partial match", "Chennai, India", Coordinates{13.0827, 80.2707}},
		{"unknown city defaults to Mumbai", "Atlantis", defaultCoordinates},
	}

	l := newTestLocator("", "http://unused.invalid", "http://unused.invalid")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Coordinates(context.Background(), tt.city)
			if got != tt.want {
				t.Errorf("Coordinates(%q) = %+v, want %+v", tt.city, got, tt.want)
			}
		})
	}
}

func TestCoordinates_PlaceholderKeySkipsAPI(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	l := newTestLocator(placeholderKey, server.URL, server.URL)
	l.Coordinates(context.Background(), "Mumbai")

	if called {
		t.Error("placeholder API key should not reach the geocoding API")
	}
}

func TestTimeZone_FromAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("location"); got != "13.082700,80.270700" {
			t.Errorf("location = %q, want 13.082700,80.270700", got)
		}
		if got := r.URL.Query().Get("timestamp"); got == "" {
			t.Error("timestamp query parameter missing")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "timeZoneId": "Asia/Kolkata"}`))
	}))
	defer server.Close()

	l := newTestLocator("test-key", server.URL, server.URL)
	tz := l.TimeZone(context.Background(), Coordinates{13.0827, 80.2707})

	if tz != "Asia/Kolkata" {
		t.Errorf("TimeZone() = %q, want Asia/Kolkata", tz)
	}
}

func TestFallbackTimeZone(t *testing.T) {
	tests := []struct {
		name   string
		coords Coordinates
		want   string
	}{
		{"india", Coordinates{19.0760, 72.8777}, "Asia/Kolkata"},
		{"us east", Coordinates{40.7128, -74.0060}, "America/New_York"},
		{"us west", Coordinates{37.7749, -122.4194}, "America/Los_Angeles"},
		{"uk", Coordinates{51.5074, -0.1278}, "Europe/London"},
		{"singapore", Coordinates{1.3521, 103.8198}, "Asia/Singapore"},
		{"australia east", Coordinates{-33.8688, 151.2093}, "Australia/Sydney"},
		{"elsewhere", Coordinates{0, 0}, "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fallbackTimeZone(tt.coords); got != tt.want {
				t.Errorf("fallbackTimeZone(%+v) = %q, want %q", tt.coords, got, tt.want)
			}
		})
	}
}
