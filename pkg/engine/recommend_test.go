package engine

import (
	"strings"
	"testing"
)

func TestBuildRecommendationURLSubstitution(t *testing.T) {
	c := &Catalog{}
	c.add("test category", Recommendation{
		Summary: "Fix it",
		Steps:   []string{"Inspect " + URLPlaceholder + " for the flaw", "Patch the server"},
	})

	f := Finding{Title: "Test Category Finding", Severity: SeverityHigh, URL: "https://example.com/page"}
	rec := BuildRecommendation(c, f)

	if rec.Steps[0] != "Inspect https://example.com/page for the flaw" {
		t.Errorf("Expected URL substituted, got %q", rec.Steps[0])
	}
	if rec.AffectedURL != "https://example.com/page" {
		t.Errorf("Expected affected URL set, got %q", rec.AffectedURL)
	}
	if rec.Timeframe != "Immediate (within 24-48 hours)" {
		t.Errorf("Expected high-severity timeframe, got %q", rec.Timeframe)
	}
}

func TestBuildRecommendationNoURLKeepsPlaceholder(t *testing.T) {
	c := &Catalog{}
	c.add("test category", Recommendation{
		Summary: "Fix it",
		Steps:   []string{"Inspect " + URLPlaceholder},
	})

	rec := BuildRecommendation(c, Finding{Title: "test category", Severity: SeverityMedium})
	if !strings.Contains(rec.Steps[0], URLPlaceholder) {
		t.Errorf("Placeholder must survive when no URL is known, got %q", rec.Steps[0])
	}
	if rec.AffectedURL != "" {
		t.Errorf("Expected empty affected URL, got %q", rec.AffectedURL)
	}
	if rec.Timeframe != "Short-term (within 1-2 weeks)" {
		t.Errorf("Expected medium-severity timeframe, got %q", rec.Timeframe)
	}
}

func TestBuildRecommendationsVulnerabilityBuckets(t *testing.T) {
	catalog := DefaultCatalog()
	details := Details{
		Vulnerabilities: []Finding{
			{Title: "SQL Injection", Severity: SeverityCritical},
			{Title: "Missing Header", Severity: SeverityMedium},
			{Title: "", Severity: SeverityInfo},
		},
	}

	set := BuildRecommendations(catalog, details)
	if len(set.HighPriority) != 1 {
		t.Errorf("Expected 1 high-priority entry, got %d", len(set.HighPriority))
	}
	if len(set.MediumPriority) != 1 {
		t.Errorf("Expected 1 medium-priority entry, got %d", len(set.MediumPriority))
	}
	if len(set.LowPriority) != 1 {
		t.Errorf("Expected 1 low-priority entry, got %d", len(set.LowPriority))
	}
	if set.LowPriority[0].Title != "Unnamed vulnerability" {
		t.Errorf("Expected empty title defaulted, got %q", set.LowPriority[0].Title)
	}
}

func TestBuildRecommendationsPortRules(t *testing.T) {
	catalog := DefaultCatalog()
	details := Details{
		OpenPorts: []PortInfo{
			{Host: "h", Port: 22, Service: "ssh", Version: "unknown"},
			{Host: "h", Port: 443, Service: "https", Version: "unknown"},
			{Host: "h", Port: 21, Service: "ftp", Version: "unknown"},
			{Host: "h", Port: 8080, Service: "http-proxy", Version: "unknown"},
		},
	}

	set := BuildRecommendations(catalog, details)

	// 22 and 21 are medium, 443 is low, 8080 produces nothing.
	if len(set.MediumPriority) != 2 {
		t.Fatalf("Expected 2 medium-priority entries, got %d", len(set.MediumPriority))
	}
	if set.MediumPriority[0].Title != "Remote Access Service on Port 22" {
		t.Errorf("Unexpected title: %q", set.MediumPriority[0].Title)
	}
	if set.MediumPriority[1].Title != "FTP Service on Port 21" {
		t.Errorf("Unexpected title: %q", set.MediumPriority[1].Title)
	}
	if len(set.LowPriority) != 1 {
		t.Fatalf("Expected 1 low-priority entry, got %d", len(set.LowPriority))
	}
	if set.LowPriority[0].Title != "Web Service on Port 443" {
		t.Errorf("Unexpected title: %q", set.LowPriority[0].Title)
	}
	if set.LowPriority[0].Recommendation == nil || set.LowPriority[0].Recommendation.Summary == "" {
		t.Error("Synthetic port entries must carry a summary recommendation")
	}
	if len(set.HighPriority) != 0 {
		t.Errorf("Ports never land in high priority, got %d entries", len(set.HighPriority))
	}
}

func TestBuildRecommendationsDirectoryRules(t *testing.T) {
	catalog := DefaultCatalog()
	details := Details{
		InterestingDirectories: []DirectoryEntry{
			{URL: "https://example.com/.env", Status: 200},
			{URL: "https://example.com/wp-admin/", Status: 301},
			{URL: "https://example.com/backup/", Status: 403},
		},
	}

	set := BuildRecommendations(catalog, details)
	if len(set.HighPriority) != 1 {
		t.Fatalf("Expected 1 high-priority entry, got %d", len(set.HighPriority))
	}
	if set.HighPriority[0].Title != "Sensitive Information Exposure" {
		t.Errorf("Unexpected title: %q", set.HighPriority[0].Title)
	}
	if !strings.Contains(set.HighPriority[0].Recommendation.Summary, "https://example.com/.env") {
		t.Errorf("Expected the URL in the summary, got %q", set.HighPriority[0].Recommendation.Summary)
	}
	if len(set.MediumPriority) != 1 {
		t.Fatalf("Expected 1 medium-priority entry, got %d", len(set.MediumPriority))
	}
	if set.MediumPriority[0].Title != "Admin Interface Exposed" {
		t.Errorf("Unexpected title: %q", set.MediumPriority[0].Title)
	}
}
