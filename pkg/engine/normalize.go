package engine

import "strings"

// RawScanBundle is one vulnerability artifact as written by an external
// tool. Two shapes exist today: scanner output ("results", the nuclei
// JSON layout) and manual check notes ("manual_checks"). A nil slice
// means the key was absent; a bundle with neither key is dropped.
type RawScanBundle struct {
	Results      []ScannerResult `json:"results"`
	ManualChecks []ManualCheck   `json:"manual_checks"`
}

// ScannerResult is a single entry of scanner-format output.
type ScannerResult struct {
	Info        ScannerInfo `json:"info"`
	Host        string      `json:"host"`
	MatcherName string      `json:"matcher-name"`
}

type ScannerInfo struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// ManualCheck is a single entry of manual-check-format output.
type ManualCheck struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Normalize converts raw bundles into the canonical Finding sequence,
// preserving input order. Missing fields fall back to defaults; this
// never fails.
func Normalize(bundles []RawScanBundle, catalog *Catalog) []Finding {
	var findings []Finding

	for _, bundle := range bundles {
		switch {
		case bundle.Results != nil:
			for _, result := range bundle.Results {
				title := result.Info.Name
				if title == "" {
					title = "Unknown Vulnerability"
				}
				// The lookup sees the raw scanner name, not the
				// defaulted title.
				rec := catalog.Lookup(result.Info.Name, result.MatcherName).Clone()
				findings = append(findings, Finding{
					Title:          title,
					Severity:       ParseSeverity(result.Info.Severity),
					Description:    result.Info.Description,
					URL:            result.Host,
					Recommendation: &rec,
				})
			}
		case bundle.ManualChecks != nil:
			for _, check := range bundle.ManualChecks {
				rec := catalog.Lookup(check.Title, "").Clone()
				findings = append(findings, Finding{
					Title:          check.Title,
					Severity:       inferManualSeverity(check.Title),
					Description:    check.Content,
					Recommendation: &rec,
				})
			}
		default:
			// Unrecognized bundle shape: skip silently.
		}
	}

	return findings
}

// inferManualSeverity guesses severity from the raw title text of a
// manual check. The match is deliberately case-sensitive and
// substring-based; downstream tooling depends on this exact behavior.
func inferManualSeverity(title string) Severity {
	if strings.Contains(title, "CRITICAL") {
		return SeverityCritical
	}
	if strings.Contains(title, "WARNING") {
		return SeverityMedium
	}
	return SeverityInfo
}
