package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// PanchangaResult is the response for /panchanga/find
type PanchangaResult struct {
	City string `json:"city"`
	Date string `json:"date"`
	Time string `json:"time"`

	Samvatsaram string `json:"samvatsaram"`
	Ayanam      string `json:"ayanam"`
	Ruthu       string `json:"ruthuvu"`
	Maasam      string `json:"maasam"`
	Paksham     string `json:"paksham"`
	Tithi       string `json:"tithi"`
	Vaaram      string `json:"vaaram"`
	Nakshatram  string `json:"nakshatram"`
	Rasi        string `json:"rasi,omitempty"`

	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`
	ValidUntil string `json:"valid_until"`

	Source string `json:"source"`
}

// MetadataResponse is the response for /panchanga/metadata
type MetadataResponse struct {
	Samvatsarams []string `json:"samvatsarams"`
	Ayanams      []string `json:"ayanams"`
	Ruthus       []string `json:"ruthus"`
	Masams       []string `json:"masams"`
	Pakshams     []string `json:"pakshams"`
	Tithis       []string `json:"tithis"`
	Vaasarams    []string `json:"vaasarams"`
	Nakshatrams  []string `json:"nakshatrams"`
	Rasis        []string `json:"rasis"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Panchanga API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	// Run test groups
	tr.testHealth()
	tr.testMetadata()
	tr.testKnownDates()
	tr.testCities()
	tr.testEdgeCases()

	// Print summary
	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := tr.parseDataAs(resp, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testMetadata() {
	tr.printSection("Metadata")

	resp, err := tr.get("/api/v1/panchanga/metadata")
	if err != nil {
		tr.recordError("Metadata", err.Error())
		return
	}

	var meta MetadataResponse
	if err := tr.parseDataAs(resp, &meta); err != nil {
		tr.recordError("Metadata", err.Error())
		return
	}

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"samvatsarams", len(meta.Samvatsarams), 60},
		{"ayanams", len(meta.Ayanams), 2},
		{"ruthus", len(meta.Ruthus), 6},
		{"masams", len(meta.Masams), 12},
		{"pakshams", len(meta.Pakshams), 2},
		{"tithis", len(meta.Tithis), 15},
		{"vaasarams", len(meta.Vaasarams), 7},
		{"nakshatrams", len(meta.Nakshatrams), 27},
		{"rasis", len(meta.Rasis), 12},
	}
	for _, c := range checks {
		if c.got == c.want {
			tr.recordSuccess(fmt.Sprintf("metadata %s has %d entries", c.name, c.got))
		} else {
			tr.recordError("Metadata", fmt.Sprintf("%s has %d entries, want %d", c.name, c.got, c.want))
		}
	}
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Date Tests")

	testCases := []struct {
		date        string
		wantMaasam  string
		wantRuthu   string
		wantVaaram  string
		description string
	}{
		{"2026-02-26", "Phalgunamu", "Shishira", "Bhruspati", "Phalguna month, Thursday"},
		{"2026-03-15", "Chaitramu", "Vasantha", "Bhanu", "First day of Chaitramu, Sunday"},
		{"2026-04-14", "Chaitramu", "Vasantha", "Bhowma", "Last day of Chaitramu, Tuesday"},
		{"2026-04-15", "Vaisakhamu", "Vasantha", "Soumya", "First day of Vaisakhamu"},
		{"2026-07-20", "Sravanamu", "Varsha", "Indu", "Monsoon month, Monday"},
		{"2026-12-20", "Pushyamu", "Hemantha", "Bhanu", "Year-end wrap month, Sunday"},
		{"2027-01-10", "Pushyamu", "Hemantha", "Bhanu", "Wrap month continues into January"},
		{"2026-01-20", "Maghamu", "Shishira", "Bhowma", "Maghamu, Tuesday"},
	}

	for _, tc := range testCases {
		result, err := tr.find("Chennai", tc.date, "18:30")
		if err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		if result.Maasam == tc.wantMaasam && result.Ruthu == tc.wantRuthu && result.Vaaram == tc.wantVaaram {
			tr.recordSuccess(fmt.Sprintf("%s: %s / %s / %s (%s) [%s]",
				tc.date, result.Maasam, result.Ruthu, result.Vaaram, tc.description, result.Source))
		} else {
			tr.recordError(tc.date, fmt.Sprintf("got %s/%s/%s, want %s/%s/%s",
				result.Maasam, result.Ruthu, result.Vaaram,
				tc.wantMaasam, tc.wantRuthu, tc.wantVaaram))
		}

		if tr.verbose {
			tr.printResultDetail(result)
		}
	}
}

func (tr *TestRunner) testCities() {
	tr.printSection("City Resolution")

	cities := []string{"Chennai", "Mumbai", "Hyderabad", "New York", "London", "Atlantis"}

	for _, city := range cities {
		result, err := tr.find(city, "2026-02-26", "6:30 PM")
		if err != nil {
			tr.recordError(city, err.Error())
			continue
		}

		// Unknown cities still resolve through the coordinate fallback.
		tr.recordSuccess(fmt.Sprintf("%s: %s / %s [%s]",
			city, result.Maasam, result.Tithi, result.Source))

		if tr.verbose {
			tr.printResultDetail(result)
		}
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	// US-style date is accepted
	result, err := tr.find("Chennai", "02/26/2026", "18:30")
	if err != nil {
		tr.recordError("US date", err.Error())
	} else if result.Maasam == "Phalgunamu" {
		tr.recordSuccess("MM/DD/YYYY date accepted")
	} else {
		tr.recordError("US date", fmt.Sprintf("maasam = %s, want Phalgunamu", result.Maasam))
	}

	// Invalid date format
	if tr.expectBadRequest("Chennai", "26.02.2026", "18:30") {
		tr.recordSuccess("Invalid date format rejected")
	} else {
		tr.recordError("Invalid date", "Should return 400")
	}

	// Missing city
	if tr.expectBadRequest("", "2026-02-26", "18:30") {
		tr.recordSuccess("Missing city rejected")
	} else {
		tr.recordError("Missing city", "Should return 400")
	}

	// Invalid time
	if tr.expectBadRequest("Chennai", "2026-02-26", "half past six") {
		tr.recordSuccess("Invalid time rejected")
	} else {
		tr.recordError("Invalid time", "Should return 400")
	}

	// Leap day
	result2, err := tr.find("Chennai", "2028-02-29", "18:30")
	if err != nil {
		tr.recordError("Leap day", err.Error())
	} else if result2.Maasam == "Phalgunamu" {
		tr.recordSuccess("Leap day (2028-02-29) handled")
	} else {
		tr.recordError("Leap day", fmt.Sprintf("maasam = %s, want Phalgunamu", result2.Maasam))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) find(city, date, timeOfDay string) (*PanchangaResult, error) {
	resp, err := tr.postFind(city, date, timeOfDay)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	var result PanchangaResult
	if err := tr.parseDataAs(&apiResp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (tr *TestRunner) expectBadRequest(city, date, timeOfDay string) bool {
	resp, err := tr.postFind(city, date, timeOfDay)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusBadRequest
}

func (tr *TestRunner) postFind(city, date, timeOfDay string) (*http.Response, error) {
	payload, err := json.Marshal(map[string]string{
		"city": city,
		"date": date,
		"time": timeOfDay,
	})
	if err != nil {
		return nil, err
	}
	return tr.client.Post(tr.baseURL+"/api/v1/panchanga/find",
		"application/json", bytes.NewReader(payload))
}

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) parseDataAs(resp *APIResponse, target interface{}) error {
	// Re-marshal and unmarshal to convert map to struct
	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return json.Unmarshal(dataBytes, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printResultDetail(r *PanchangaResult) {
	if r == nil {
		return
	}
	fmt.Printf("    Samvatsaram: %s, Ayanam: %s\n", r.Samvatsaram, r.Ayanam)
	fmt.Printf("    Maasam: %s, Paksham: %s, Tithi: %s\n", r.Maasam, r.Paksham, r.Tithi)
	fmt.Printf("    Vaaram: %s, Nakshatram: %s\n", r.Vaaram, r.Nakshatram)
	fmt.Printf("    Sunrise: %s, Sunset: %s, Valid until: %s\n", r.Sunrise, r.Sunset, r.ValidUntil)
	fmt.Printf("    Source: %s\n", r.Source)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show full record details)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	_, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
