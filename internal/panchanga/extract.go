package panchanga

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/sankalpam/panchanga-api/internal/lookup"
)

// The provider answers with an HTML fragment: the panchanga values appear as
// bold spans in a fixed order, sunrise/sunset as labelled italic spans, and
// the validity window as a "valid through ...: <br" sentence fragment.
var (
	boldPattern         = regexp.MustCompile(`(?is)<b>(.*?)</b>`)
	sunrisePattern      = regexp.MustCompile(`(?i)Sunrise:\s*<i>([^<]+)</i>`)
	sunsetPattern       = regexp.MustCompile(`(?i)Sunset:\s*<i>([^<]+)</i>`)
	validThroughPattern = regexp.MustCompile(`(?is)valid through\s+(.+?)\s*:\s*<br`)
)

// minBoldTokens is the smallest bold-span count a parseable response carries.
const minBoldTokens = 8

// Positions of the panchanga fields within the bold-span sequence. Indices
// 2, 3 and 6 (provider maasam, ruthu and vaaram) are ignored: those fields
// are derived from the request date instead.
const (
	tokenSamvatsaram = 0
	tokenAyanam      = 1
	tokenPaksham     = 4
	tokenTithi       = 5
	tokenNakshatram  = 7
)

// excerptLimit caps the diagnostic response excerpt logged on parse failure.
const excerptLimit = 500

// Extractor turns a raw provider response into a Result.
type Extractor struct {
	tables   *lookup.Registry
	resolver *Resolver
	logger   *slog.Logger
}

// NewExtractor creates an extractor over the given tables.
func NewExtractor(tables *lookup.Registry, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		tables:   tables,
		resolver: NewResolver(tables, logger),
		logger:   logger,
	}
}

// Extract parses the provider response body into res, which must already
// carry the echoed city, date and time. It reports whether extraction
// succeeded; on false the caller should discard res and serve the fallback
// record. Sunrise and sunset are load-bearing: a response missing either is
// treated as unparseable no matter what else was found.
func (e *Extractor) Extract(body string, res *Result) bool {
	tokens := extractBoldValues(body)
	if len(tokens) < minBoldTokens {
		e.logger.Warn("provider response has too few bold values",
			slog.Int("got", len(tokens)),
			slog.Int("want", minBoldTokens),
			slog.String("excerpt", excerpt(body)))
		return false
	}

	res.Samvatsaram = e.tables.Get(lookup.CategorySamvatsaram, tokens[tokenSamvatsaram])
	res.Ayanam = e.tables.Get(lookup.CategoryAyanam, tokens[tokenAyanam])
	res.Paksham = e.tables.Get(lookup.CategoryPaksham, tokens[tokenPaksham])
	res.Tithi = e.tables.Get(lookup.CategoryTithi, tokens[tokenTithi])
	res.Nakshatram = e.tables.Get(lookup.CategoryNakshatram, tokens[tokenNakshatram])

	// Maasam, ruthu and vaaram come from the request date, not the token
	// stream. The provider's values for those positions are discarded.
	res.Maasam, _ = e.resolver.ResolveMonth(res.Date)
	res.Ruthu, _ = e.resolver.ResolveSeason(res.Maasam)
	res.Vaaram, _ = e.resolver.ResolveWeekday(res.Date)

	res.Sunrise = firstSubmatch(sunrisePattern, body)
	res.Sunset = firstSubmatch(sunsetPattern, body)
	res.ValidUntil = firstSubmatch(validThroughPattern, body)

	if res.Sunrise == "" || res.Sunset == "" {
		e.logger.Warn("provider response missing sunrise or sunset",
			slog.String("excerpt", excerpt(body)))
		return false
	}
	return true
}

// extractBoldValues collects all bold-span contents in document order.
func extractBoldValues(body string) []string {
	var values []string
	for _, match := range boldPattern.FindAllStringSubmatch(body, -1) {
		values = append(values, strings.TrimSpace(match[1]))
	}
	return values
}

// firstSubmatch returns the first capture of the pattern, trimmed, or "".
func firstSubmatch(pattern *regexp.Regexp, body string) string {
	if match := pattern.FindStringSubmatch(body); match != nil {
		return strings.TrimSpace(match[1])
	}
	return ""
}

func excerpt(body string) string {
	if len(body) > excerptLimit {
		return body[:excerptLimit]
	}
	return body
}
