package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/bountyx-ai/pkg/engine"
)

func sampleAnalysis() *engine.Analysis {
	count := 2
	return &engine.Analysis{
		Summary: engine.Summary{
			SubdomainCount:     &count,
			VulnerabilityCount: &engine.SeverityCount{High: 1},
		},
		Details: engine.Details{
			InterestingSubdomains: []string{"admin.example.com"},
			Vulnerabilities: []engine.Finding{
				{
					Title:          "XSS in search",
					Severity:       engine.SeverityHigh,
					Description:    "Reflected",
					Recommendation: &engine.Recommendation{Summary: "Encode output"},
				},
			},
		},
		Priorities: engine.Priorities{
			ImmediateAction: []engine.TimedAction{
				{
					Title:          "XSS in search",
					Description:    "Reflected",
					Recommendation: &engine.Recommendation{Summary: "Encode output"},
					Timeframe:      engine.TimeframeImmediate,
				},
			},
		},
	}
}

func TestNewReport(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	r := New("example.com", sampleAnalysis(), now)

	if r.Target != "example.com" {
		t.Errorf("Unexpected target: %q", r.Target)
	}
	if r.Timestamp != "20250314092653" {
		t.Errorf("Unexpected timestamp: %q", r.Timestamp)
	}
	if r.ScanDate != "2025-03-14 09:26:53" {
		t.Errorf("Unexpected scan date: %q", r.ScanDate)
	}
}

func TestRemediationPlanNumbering(t *testing.T) {
	r := New("example.com", sampleAnalysis(), time.Now())

	if len(r.RemediationPlan.ImmediateActions) != 1 {
		t.Fatalf("Expected 1 immediate action, got %d", len(r.RemediationPlan.ImmediateActions))
	}
	want := "1. XSS in search: Encode output [As soon as possible (24-48 hours)]"
	if r.RemediationPlan.ImmediateActions[0] != want {
		t.Errorf("Expected %q, got %q", want, r.RemediationPlan.ImmediateActions[0])
	}
	if len(r.RemediationPlan.ShortTermActions) != 0 {
		t.Errorf("Expected no short-term actions, got %v", r.RemediationPlan.ShortTermActions)
	}
}

func TestSaveJSON(t *testing.T) {
	dir := t.TempDir()
	r := New("example.com", sampleAnalysis(), time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))

	path, err := r.Save(dir, "json")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	want := filepath.Join(dir, "analysis", "example.com_analysis_20250314092653.json")
	if path != want {
		t.Errorf("Expected path %q, got %q", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}
	if decoded.Target != "example.com" {
		t.Errorf("Unexpected round-tripped target: %q", decoded.Target)
	}
	if strings.Contains(string(data), "ai_enhanced") {
		t.Error("ai_enhanced must be omitted when no enhancement ran")
	}
}

func TestSaveText(t *testing.T) {
	dir := t.TempDir()
	r := New("example.com", sampleAnalysis(), time.Now())

	path, err := r.Save(dir, "txt")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "BountyX AI Analysis Report") {
		t.Error("Missing report header")
	}
	if !strings.Contains(text, "Subdomains found: 2") {
		t.Error("Missing subdomain count")
	}
	if !strings.Contains(text, "XSS in search [HIGH]") {
		t.Error("Missing vulnerability line")
	}
	if strings.Contains(text, "AI-Enhanced Analysis") {
		t.Error("AI section must be omitted when no enhancement ran")
	}
}

func TestSaveHTML(t *testing.T) {
	dir := t.TempDir()
	a := sampleAnalysis()
	a.AIEnhanced = &engine.AIEnhanced{Model: "Gemini gemini-pro", Analysis: "Line one\nLine two"}
	r := New("example.com", a, time.Now())

	path, err := r.Save(dir, "html")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if !strings.Contains(html, "vuln-high") {
		t.Error("Missing severity CSS class")
	}
	if !strings.Contains(html, "Line one<br>Line two") {
		t.Error("AI analysis newlines must be rendered as <br>")
	}
	if !strings.Contains(html, "Generated by BountyX AI Helper") {
		t.Error("Missing footer")
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	r := New("example.com", sampleAnalysis(), time.Now())
	if _, err := r.Save(t.TempDir(), "pdf"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(0); got != "unknown" {
		t.Errorf("Expected 'unknown' for zero status, got %q", got)
	}
	if got := statusLabel(403); got != "403" {
		t.Errorf("Expected '403', got %q", got)
	}
}
