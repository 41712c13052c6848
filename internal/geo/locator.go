// Package geo resolves a city name to coordinates and a timezone using the
// Google Geocoding and Time Zone APIs, with static fallbacks so a missing API
// key or an outage never fails a request.
package geo

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultGeocodeURL  = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimezoneURL = "https://maps.googleapis.com/maps/api/timezone/json"

	// placeholderKey is the unconfigured value shipped in sample env files.
	placeholderKey = "YOUR_GOOGLE_API_KEY"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// fallbackCities covers common cities when the Google APIs are unavailable.
var fallbackCities = map[string]Coordinates{
	"mumbai":    {19.0760, 72.8777},
	"delhi":     {28.7041, 77.1025},
	"bangalore": {12.9716, 77.5946},
	"chennai":   {13.0827, 80.2707},
	"kolkata":   {22.5726, 88.3639},
	"hyderabad": {17.3850, 78.4867},
	"pune":      {18.5204, 73.8567},
	"new york":  {40.7128, -74.0060},
	"london":    {51.5074, -0.1278},
	"singapore": {1.3521, 103.8198},
	"sydney":    {-33.8688, 151.2093},
	"tokyo":     {35.6762, 139.6503},
}

// defaultCoordinates is Mumbai, used when no fallback city matches.
var defaultCoordinates = Coordinates{19.0760, 72.8777}

// Locator resolves cities to coordinates and coordinates to timezones.
type Locator struct {
	client      *resty.Client
	apiKey      string
	geocodeURL  string
	timezoneURL string
	logger      *slog.Logger
	now         func() time.Time
}

// NewLocator creates a locator. An empty or placeholder API key disables the
// Google calls entirely; only the static fallbacks are used then.
func NewLocator(apiKey string, timeout time.Duration, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Locator{
		client:      resty.New().SetTimeout(timeout),
		apiKey:      strings.TrimSpace(apiKey),
		geocodeURL:  defaultGeocodeURL,
		timezoneURL: defaultTimezoneURL,
		logger:      logger,
		now:         time.Now,
	}
}

func (l *Locator) keyConfigured() bool {
	return l.apiKey != "" && l.apiKey != placeholderKey
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Results      []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Coordinates resolves a city name to coordinates. It never fails: on any
// API problem it answers from the static city table, defaulting to Mumbai.
func (l *Locator) Coordinates(ctx context.Context, city string) Coordinates {
	if !l.keyConfigured() {
		l.logger.Warn("google API key not configured, using fallback coordinates",
			slog.String("city", city))
		return fallbackCoordinates(city, l.logger)
	}

	var geo geocodeResponse
	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"address": city,
			"key":     l.apiKey,
		}).
		SetResult(&geo).
		Get(l.geocodeURL)

	if err != nil || !resp.IsSuccess() {
		l.logger.Warn("geocoding request failed, using fallback coordinates",
			slog.String("city", city),
			slog.Any("error", err))
		return fallbackCoordinates(city, l.logger)
	}

	if geo.Status != "OK" || len(geo.Results) == 0 {
		l.logger.Warn("geocoding returned no result, using fallback coordinates",
			slog.String("city", city),
			slog.String("status", geo.Status),
			slog.String("error_message", geo.ErrorMessage))
		return fallbackCoordinates(city, l.logger)
	}

	loc := geo.Results[0].Geometry.Location
	l.logger.Debug("geocoded city",
		slog.String("city", city),
		slog.Float64("lat", loc.Lat),
		slog.Float64("lng", loc.Lng))
	return loc
}

func fallbackCoordinates(city string, logger *slog.Logger) Coordinates {
	normalized := strings.ToLower(strings.TrimSpace(city))

	if coords, ok := fallbackCities[normalized]; ok {
		return coords
	}

	// Partial match catches inputs like "Chennai, India".
	for name, coords := range fallbackCities {
		if strings.Contains(normalized, name) || strings.Contains(name, normalized) {
			return coords
		}
	}

	logger.Warn("no fallback coordinates for city, using default",
		slog.String("city", city))
	return defaultCoordinates
}

type timezoneResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	TimeZoneID   string `json:"timeZoneId"`
}

// TimeZone resolves coordinates to an IANA timezone name. On any API problem
// a coarse coordinate-box fallback is used, defaulting to UTC.
func (l *Locator) TimeZone(ctx context.Context, coords Coordinates) string {
	if !l.keyConfigured() {
		l.logger.Warn("google API key not configured, using fallback timezone")
		return fallbackTimeZone(coords)
	}

	location := strconv.FormatFloat(coords.Lat, 'f', 6, 64) + "," +
		strconv.FormatFloat(coords.Lng, 'f', 6, 64)

	var tz timezoneResponse
	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"location":  location,
			"timestamp": strconv.FormatInt(l.now().Unix(), 10),
			"key":       l.apiKey,
		}).
		SetResult(&tz).
		Get(l.timezoneURL)

	if err != nil || !resp.IsSuccess() {
		l.logger.Warn("timezone request failed, using fallback",
			slog.Any("error", err))
		return fallbackTimeZone(coords)
	}

	if tz.Status != "OK" || tz.TimeZoneID == "" {
		l.logger.Warn("timezone lookup returned no result, using fallback",
			slog.String("status", tz.Status),
			slog.String("error_message", tz.ErrorMessage))
		return fallbackTimeZone(coords)
	}

	return tz.TimeZoneID
}

// fallbackTimeZone guesses a timezone from coarse coordinate boxes covering
// the regions the service is commonly asked about.
func fallbackTimeZone(c Coordinates) string {
	switch {
	case c.Lat >= 8 && c.Lat <= 35 && c.Lng >= 68 && c.Lng <= 97: // India
		return "Asia/Kolkata"
	case c.Lat >= 25 && c.Lat <= 48 && c.Lng >= -85 && c.Lng <= -67: // US East Coast
		return "America/New_York"
	case c.Lat >= 32 && c.Lat <= 49 && c.Lng >= -125 && c.Lng <= -114: // US West Coast
		return "America/Los_Angeles"
	case c.Lat >= 49 && c.Lat <= 61 && c.Lng >= -8 && c.Lng <= 2: // UK
		return "Europe/London"
	case c.Lat >= 1 && c.Lat <= 8 && c.Lng >= 100 && c.Lng <= 105: // Singapore/Malaysia
		return "Asia/Singapore"
	case c.Lat >= -38 && c.Lat <= -28 && c.Lng >= 144 && c.Lng <= 154: // Australia East
		return "Australia/Sydney"
	}
	return "UTC"
}
