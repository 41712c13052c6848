package panchanga

import (
	"context"
	"log/slog"
)

// Fetcher retrieves the provider's raw response for a find request.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (string, error)
}

// Finder is the public entry point of the package: it fetches, extracts and
// composes a full calendar record. Find never returns an error; every failure
// path terminates in the fixed fallback record, marked by Result.Source.
type Finder struct {
	fetcher   Fetcher
	extractor *Extractor
	logger    *slog.Logger
}

// NewFinder wires a fetcher and an extractor into a finder.
func NewFinder(fetcher Fetcher, extractor *Extractor, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{fetcher: fetcher, extractor: extractor, logger: logger}
}

// Find returns the calendar record for the request. The result always echoes
// the request's city, date and time, whether extracted or fallback.
func (f *Finder) Find(ctx context.Context, req Request) Result {
	body, err := f.fetcher.Fetch(ctx, req)
	if err != nil {
		f.logger.Warn("provider fetch failed, serving fallback",
			slog.String("city", req.City),
			slog.String("date", req.Date),
			slog.String("time", req.Time),
			slog.Any("error", err))
		return FallbackResult(req.City, req.Date, req.Time)
	}

	result := Result{City: req.City, Date: req.Date, Time: req.Time}
	if !f.extractor.Extract(body, &result) {
		f.logger.Warn("provider response unparseable, serving fallback",
			slog.String("city", req.City),
			slog.String("date", req.Date))
		return FallbackResult(req.City, req.Date, req.Time)
	}
	result.Source = SourceProvider

	f.logger.Info("panchanga extracted",
		slog.String("city", req.City),
		slog.String("date", req.Date),
		slog.String("samvatsaram", result.Samvatsaram),
		slog.String("maasam", result.Maasam),
		slog.String("tithi", result.Tithi),
		slog.String("vaaram", result.Vaaram))
	return result
}
