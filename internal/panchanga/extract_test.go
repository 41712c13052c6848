package panchanga

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleBody mimics the provider's HTML fragment: eight bold panchanga
// values, labelled sunrise/sunset spans and a validity sentence.
const sampleBody = `<html><body>
Sankalpam for the requested moment:<br/>
<b>Vishvavasu</b> nama samvatsare, <b>Uttarayana</b> ayane,
<B>sisira</B> ruthou, <b>Mena</b> mase, <b>krishnapaksha</b> pakshe,
<b>ashtamyam</b> thithou, <b>guru</b> vasara yuktayam,
<b>purva</b> nakshatra yuktayam.<br/>
Sunrise: <i>06:41 AM</i> Sunset: <i>06:23 PM</i><br/>
The above details are valid through 05:30:12 AM of following day: <br/>
</body></html>`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(testTables(t), quietLogger())
}

func TestExtract_FullResponse(t *testing.T) {
	e := newTestExtractor(t)

	res := Result{City: "Chennai", Date: "2026-02-26", Time: "18:30"}
	ok := e.Extract(sampleBody, &res)
	require.True(t, ok, "extraction should succeed")

	// Token-derived fields, translated through the lookup tables.
	assert.Equal(t, "Vishvavasu", res.Samvatsaram)
	assert.Equal(t, "Uttarayanam", res.Ayanam)
	assert.Equal(t, "Krishna Paksham", res.Paksham)
	assert.Equal(t, "Ashtami", res.Tithi)
	assert.Equal(t, "Purva Phalguni", res.Nakshatram)

	// Date-derived fields override the provider tokens: the body says
	// "sisira"/"Mena"/"guru" but 2026-02-26 is a Thursday in Phalgunamu.
	assert.Equal(t, "Phalgunamu", res.Maasam)
	assert.Equal(t, "Shishira", res.Ruthu)
	assert.Equal(t, "Bhruspati", res.Vaaram)

	assert.Equal(t, "06:41 AM", res.Sunrise)
	assert.Equal(t, "06:23 PM", res.Sunset)
	assert.Equal(t, "05:30:12 AM of following day", res.ValidUntil)
}

func TestExtract_MissingValidThrough(t *testing.T) {
	e := newTestExtractor(t)

	body := strings.Replace(sampleBody, "valid through", "valid until", 1)
	res := Result{City: "Chennai", Date: "2026-02-26", Time: "18:30"}
	ok := e.Extract(body, &res)

	// The validity window is optional; extraction still succeeds.
	require.True(t, ok)
	assert.Empty(t, res.ValidUntil)
	assert.Equal(t, "06:41 AM", res.Sunrise)
}

func TestExtract_TooFewTokens(t *testing.T) {
	e := newTestExtractor(t)

	body := `<b>one</b><b>two</b><b>three</b>
Sunrise: <i>06:41 AM</i> Sunset: <i>06:23 PM</i>`
	res := Result{City: "Chennai", Date: "2026-02-26", Time: "18:30"}
	assert.False(t, e.Extract(body, &res))
}

func TestExtract_MissingSunriseOrSunset(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		body string
	}{
		{"no sunrise", strings.Replace(sampleBody, "Sunrise:", "Dawn:", 1)},
		{"no sunset", strings.Replace(sampleBody, "Sunset:", "Dusk:", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Result{City: "Chennai", Date: "2026-02-26", Time: "18:30"}
			assert.False(t, e.Extract(tt.body, &res))
		})
	}
}

func TestExtract_EmptyBody(t *testing.T) {
	e := newTestExtractor(t)

	res := Result{City: "Chennai", Date: "2026-02-26", Time: "18:30"}
	assert.False(t, e.Extract("", &res))
}

func TestExtractBoldValues_Order(t *testing.T) {
	body := `<b> first </b> filler <B>second</B> filler <b>third</b>`
	assert.Equal(t, []string{"first", "second", "third"}, extractBoldValues(body))
}

func TestFallbackResult(t *testing.T) {
	res := FallbackResult("Mumbai", "2026-02-24", "18:30")

	want := Result{
		City:        "Mumbai",
		Date:        "2026-02-24",
		Time:        "18:30",
		Samvatsaram: "Pingala",
		Ayanam:      "Uttarayanam",
		Ruthu:       "Vasantha Ruthu",
		Maasam:      "Phalguna",
		Paksham:     "Krishna Paksham",
		Tithi:       "Ashtami",
		Vaaram:      "Soma Vaasaram (Monday)",
		Nakshatram:  "Purva Phalguni",
		Rasi:        "Simha (Leo)",
		Sunrise:     "06:18",
		Sunset:      "18:35",
		ValidUntil:  "2026-02-24T23:59:59",
		Source:      SourceFallback,
	}
	assert.Equal(t, want, res)
}
