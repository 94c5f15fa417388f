// Package loader reads scan artifacts from a results directory laid out
// by the recon pipeline: one subdirectory per tool, JSON files inside.
package loader

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/user/bountyx-ai/pkg/adk"
	"github.com/user/bountyx-ai/pkg/engine"
)

// ErrNoResults is returned when no artifact could be loaded at all.
var ErrNoResults = errors.New("no scan results found")

// Load reads every recognized artifact under dir. Per-file failures are
// logged and skipped; only a completely empty result set is an error.
func Load(dir string) (*engine.ScanResults, error) {
	adk.Infof("Loading results from %s", dir)
	results := &engine.ScanResults{}

	if path := firstMatch(dir, "subdomains"); path != "" {
		var scan engine.SubdomainScan
		if err := readJSON(path, &scan); err != nil {
			adk.Errorf("Error loading subdomain results: %v", err)
		} else {
			results.Subdomains = &scan
			adk.Infof("Loaded %d subdomains", len(scan.Subdomains))
		}
	}

	if path := firstMatch(dir, "ports"); path != "" {
		var scan engine.PortScan
		if err := readJSON(path, &scan); err != nil {
			adk.Errorf("Error loading port scan results: %v", err)
		} else {
			results.Ports = &scan
			adk.Infof("Loaded port scan results")
		}
	}

	if path := firstMatch(dir, "directories"); path != "" {
		var scan engine.DirectoryScan
		if err := readJSON(path, &scan); err != nil {
			adk.Errorf("Error loading directory enumeration results: %v", err)
		} else {
			results.Directories = &scan
			adk.Infof("Loaded directory enumeration results")
		}
	}

	if path := firstMatch(dir, "livehosts"); path != "" {
		var scan engine.LiveHostScan
		if err := readJSON(path, &scan); err != nil {
			adk.Errorf("Error loading live host results: %v", err)
		} else {
			results.LiveHosts = &scan
			adk.Infof("Loaded live host results")
		}
	}

	// Vulnerability artifacts accumulate: every tool writes its own file.
	vulnFiles, _ := filepath.Glob(filepath.Join(dir, "vulnerabilities", "*.json"))
	for _, path := range vulnFiles {
		var bundle engine.RawScanBundle
		if err := readJSON(path, &bundle); err != nil {
			adk.Errorf("Error loading vulnerability results from %s: %v", path, err)
			continue
		}
		results.Vulnerabilities = append(results.Vulnerabilities, bundle)
		adk.Infof("Loaded vulnerability results from %s", path)
	}

	if results.Empty() {
		adk.Warnf("No results were loaded. Make sure the scans have completed.")
		return nil, ErrNoResults
	}

	return results, nil
}

// firstMatch returns the first JSON file in the named subdirectory, or
// empty when none exist.
func firstMatch(dir, section string) string {
	matches, _ := filepath.Glob(filepath.Join(dir, section, "*.json"))
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
