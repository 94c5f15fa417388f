package engine

import (
	"testing"
)

func TestNormalizeScannerResults(t *testing.T) {
	catalog := DefaultCatalog()

	bundles := []RawScanBundle{
		{
			Results: []ScannerResult{
				{
					Info: ScannerInfo{
						Name:        "SQL Injection",
						Severity:    "HIGH",
						Description: "Parameter id is injectable",
					},
					Host:        "https://example.com/search",
					MatcherName: "error-based",
				},
				{
					// Nameless result with an unknown severity.
					Info: ScannerInfo{Severity: "bogus"},
					Host: "https://example.com",
				},
			},
		},
	}

	findings := Normalize(bundles, catalog)
	if len(findings) != 2 {
		t.Fatalf("Expected 2 findings, got %d", len(findings))
	}

	if findings[0].Title != "SQL Injection" {
		t.Errorf("Expected title 'SQL Injection', got %q", findings[0].Title)
	}
	if findings[0].Severity != SeverityHigh {
		t.Errorf("Expected high severity, got %q", findings[0].Severity)
	}
	if findings[0].URL != "https://example.com/search" {
		t.Errorf("Expected URL carried over, got %q", findings[0].URL)
	}
	if findings[0].Recommendation == nil {
		t.Fatal("Expected a recommendation attached")
	}

	if findings[1].Title != "Unknown Vulnerability" {
		t.Errorf("Expected default title, got %q", findings[1].Title)
	}
	if findings[1].Severity != SeverityInfo {
		t.Errorf("Expected info fallback for unknown severity, got %q", findings[1].Severity)
	}
}

func TestNormalizeManualChecks(t *testing.T) {
	catalog := DefaultCatalog()

	bundles := []RawScanBundle{
		{
			ManualChecks: []ManualCheck{
				{Title: "CRITICAL: Exposed admin panel", Content: "Panel reachable without auth"},
				{Title: "WARNING: Verbose server banner", Content: "Server header leaks version"},
				{Title: "Check robots.txt entries", Content: "Nothing notable"},
			},
		},
	}

	findings := Normalize(bundles, catalog)
	if len(findings) != 3 {
		t.Fatalf("Expected 3 findings, got %d", len(findings))
	}

	if findings[0].Severity != SeverityCritical {
		t.Errorf("Expected critical for CRITICAL title, got %q", findings[0].Severity)
	}
	if findings[1].Severity != SeverityMedium {
		t.Errorf("Expected medium for WARNING title, got %q", findings[1].Severity)
	}
	if findings[2].Severity != SeverityInfo {
		t.Errorf("Expected info for plain title, got %q", findings[2].Severity)
	}
	if findings[0].URL != "" {
		t.Errorf("Manual checks carry no URL, got %q", findings[0].URL)
	}
}

func TestNormalizeSeverityMarkersAreCaseSensitive(t *testing.T) {
	catalog := DefaultCatalog()

	bundles := []RawScanBundle{
		{ManualChecks: []ManualCheck{{Title: "critical: lowercase marker"}}},
	}

	findings := Normalize(bundles, catalog)
	if findings[0].Severity != SeverityInfo {
		t.Errorf("Lowercase marker must not match, got %q", findings[0].Severity)
	}
}

func TestNormalizeSkipsUnrecognizedBundles(t *testing.T) {
	catalog := DefaultCatalog()

	bundles := []RawScanBundle{
		{}, // neither key present
		{ManualChecks: []ManualCheck{{Title: "Note", Content: "x"}}},
	}

	findings := Normalize(bundles, catalog)
	if len(findings) != 1 {
		t.Errorf("Expected the empty bundle to be skipped, got %d findings", len(findings))
	}
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"critical": SeverityCritical,
		"CRITICAL": SeverityCritical,
		"High":     SeverityHigh,
		"medium":   SeverityMedium,
		"low":      SeverityLow,
		"info":     SeverityInfo,
		"":         SeverityInfo,
		"unknown":  SeverityInfo,
	}
	for raw, want := range cases {
		if got := ParseSeverity(raw); got != want {
			t.Errorf("ParseSeverity(%q) = %q, want %q", raw, got, want)
		}
	}
}
