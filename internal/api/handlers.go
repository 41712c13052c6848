package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/sankalpam/panchanga-api/internal/geo"
	"github.com/sankalpam/panchanga-api/internal/logger"
	"github.com/sankalpam/panchanga-api/internal/panchanga"
)

// CityLocator resolves a city to coordinates and a timezone.
type CityLocator interface {
	Coordinates(ctx context.Context, city string) geo.Coordinates
	TimeZone(ctx context.Context, coords geo.Coordinates) string
}

// PanchangaFinder produces the calendar record for a request.
type PanchangaFinder interface {
	Find(ctx context.Context, req panchanga.Request) panchanga.Result
}

// Handlers contains all HTTP handlers and their dependencies. Request-scoped
// logging goes through logger.FromContext so every line carries the request ID
// stamped by the RequestLogger middleware.
type Handlers struct {
	locator CityLocator
	finder  PanchangaFinder
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(locator CityLocator, finder PanchangaFinder) *Handlers {
	return &Handlers{
		locator: locator,
		finder:  finder,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, "", map[string]string{
		"status": "healthy",
	})
}

// Metadata handles GET /api/v1/panchanga/metadata
// Returns the dropdown options for the panchanga calendar fields.
func (h *Handlers) Metadata(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, "success", map[string]interface{}{
		"samvatsarams": samvatsarams,
		"ayanams":      ayanams,
		"ruthus":       ruthus,
		"masams":       masams,
		"pakshams":     pakshams,
		"tithis":       tithis,
		"vaasarams":    vaasarams,
		"nakshatrams":  nakshatrams,
		"rasis":        rasis,
	})
}

// FindRequest is the body of POST /api/v1/panchanga/find.
type FindRequest struct {
	City string `json:"city"`
	Date string `json:"date"` // YYYY-MM-DD or MM/DD/YYYY
	Time string `json:"time"` // HH:MM (24h) or h:mm AM/PM
}

// clockPattern accepts 24-hour and AM/PM clock times.
var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(\s*[AaPp][Mm])?$`)

// Validate checks the request fields and normalizes the city.
func (fr *FindRequest) Validate() error {
	fr.City = strings.TrimSpace(fr.City)
	if fr.City == "" {
		return fmt.Errorf("city is required")
	}
	if _, err := panchanga.ParseDate(fr.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD or MM/DD/YYYY, got %q", fr.Date)
	}
	if !clockPattern.MatchString(strings.TrimSpace(fr.Time)) {
		return fmt.Errorf("time must be HH:MM or h:mm AM/PM, got %q", fr.Time)
	}
	return nil
}

// FindPanchanga handles POST /api/v1/panchanga/find
// Resolves the city to coordinates and a timezone, then returns the calendar
// record for the given date and time. The response is always populated: when
// the upstream provider is unavailable the record carries fallback data,
// marked by its source field.
func (h *Handlers) FindPanchanga(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn(ctx, "find request rejected",
			slog.String("reason", "invalid JSON body"))
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "find request rejected",
			slog.Any("error", err))
		WriteBadRequest(w, err.Error())
		return
	}

	coords := h.locator.Coordinates(ctx, req.City)
	timezone := h.locator.TimeZone(ctx, coords)
	logger.Debug(ctx, "city resolved",
		slog.String("city", req.City),
		slog.Float64("lat", coords.Lat),
		slog.Float64("lng", coords.Lng),
		slog.String("timezone", timezone))

	result := h.finder.Find(ctx, panchanga.Request{
		City:     req.City,
		Lat:      coords.Lat,
		Lng:      coords.Lng,
		Timezone: timezone,
		Date:     req.Date,
		Time:     req.Time,
	})

	logger.Info(ctx, "panchanga request served",
		slog.String("city", req.City),
		slog.String("date", req.Date),
		slog.String("source", string(result.Source)))

	WriteSuccess(w, "Panchanga found successfully for the given date, time, and location.", result)
}
