package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, dir, section, name, content string) {
	t.Helper()
	sectionDir := filepath.Join(dir, section)
	if err := os.MkdirAll(sectionDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sectionDir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAllSections(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "subdomains", "subfinder.json", `{"subdomains": ["a.example.com", "b.example.com"]}`)
	writeArtifact(t, dir, "ports", "nmap.json", `{"scan_results": [{"host": "a.example.com", "ports": [{"port": 443, "service": "https"}]}]}`)
	writeArtifact(t, dir, "directories", "ffuf.json", `{"directory_scan": [{"url": "https://a.example.com/admin", "status": 200}]}`)
	writeArtifact(t, dir, "livehosts", "httpx.json", `{"live_hosts": ["a.example.com"]}`)
	writeArtifact(t, dir, "vulnerabilities", "nuclei.json", `{"results": [{"info": {"name": "XSS", "severity": "high"}, "host": "https://a.example.com"}]}`)
	writeArtifact(t, dir, "vulnerabilities", "manual.json", `{"manual_checks": [{"title": "WARNING: banner", "content": "leaks version"}]}`)

	results, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if results.Subdomains == nil || len(results.Subdomains.Subdomains) != 2 {
		t.Errorf("Unexpected subdomains: %+v", results.Subdomains)
	}
	if results.Ports == nil || len(results.Ports.ScanResults) != 1 {
		t.Errorf("Unexpected ports: %+v", results.Ports)
	}
	if results.Directories == nil || len(results.Directories.DirectoryScan) != 1 {
		t.Errorf("Unexpected directories: %+v", results.Directories)
	}
	if results.LiveHosts == nil || len(results.LiveHosts.LiveHosts) != 1 {
		t.Errorf("Unexpected live hosts: %+v", results.LiveHosts)
	}
	if len(results.Vulnerabilities) != 2 {
		t.Errorf("Expected 2 vulnerability bundles, got %d", len(results.Vulnerabilities))
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("Expected ErrNoResults, got %v", err)
	}
}

func TestLoadSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "ports", "broken.json", `{not json`)
	writeArtifact(t, dir, "subdomains", "ok.json", `{"subdomains": ["a.example.com"]}`)

	results, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if results.Ports != nil {
		t.Error("Malformed section must be skipped, not partially loaded")
	}
	if results.Subdomains == nil {
		t.Error("Valid section must still load")
	}
}

func TestLoadMalformedVulnerabilityFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "vulnerabilities", "bad.json", `[]`)
	writeArtifact(t, dir, "vulnerabilities", "good.json", `{"manual_checks": [{"title": "x", "content": "y"}]}`)

	results, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(results.Vulnerabilities) != 1 {
		t.Errorf("Expected only the valid bundle, got %d", len(results.Vulnerabilities))
	}
}
