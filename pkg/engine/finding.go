package engine

import "strings"

// Severity is the normalized severity of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// ParseSeverity normalizes a raw severity string from scanner output.
// Anything outside the known set falls back to info.
func ParseSeverity(raw string) Severity {
	switch Severity(strings.ToLower(raw)) {
	case SeverityCritical:
		return SeverityCritical
	case SeverityHigh:
		return SeverityHigh
	case SeverityMedium:
		return SeverityMedium
	case SeverityLow:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// Timeframe returns the remediation timeframe attached to per-finding
// recommendations for this severity.
func (s Severity) Timeframe() string {
	switch s {
	case SeverityCritical, SeverityHigh:
		return "Immediate (within 24-48 hours)"
	case SeverityMedium:
		return "Short-term (within 1-2 weeks)"
	default:
		return "Medium-term (within 1 month)"
	}
}

// Finding is a normalized vulnerability or observation derived from raw
// scan output. Findings are built once during normalization and never
// mutated afterwards.
type Finding struct {
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	// Attached during normalization; always non-nil on a processed Finding.
	Recommendation *Recommendation `json:"recommendation"`
}

// URLPlaceholder is the token in remediation step text that gets
// replaced with the affected URL when one is known.
const URLPlaceholder = "{{URL}}"

// Recommendation is remediation guidance for a finding. Catalog entries
// carry summary/steps/example/references; AffectedURL and Timeframe are
// filled in per finding.
type Recommendation struct {
	Summary     string   `json:"summary"`
	Steps       []string `json:"steps,omitempty"`
	CodeExample string   `json:"code_example,omitempty"`
	References  []string `json:"references,omitempty"`
	AffectedURL string   `json:"affected_url,omitempty"`
	Timeframe   string   `json:"timeframe,omitempty"`
}

// Clone returns a copy sharing no slice storage with the original, so
// per-finding substitution cannot leak back into the catalog.
func (r Recommendation) Clone() Recommendation {
	r.Steps = append([]string(nil), r.Steps...)
	r.References = append([]string(nil), r.References...)
	return r
}

// SeverityCount tallies findings per severity level.
type SeverityCount struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Info     int `json:"info"`
}

// Add increments the bucket for the given severity. Unknown values have
// already been folded to info by ParseSeverity.
func (c *SeverityCount) Add(s Severity) {
	switch s {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	default:
		c.Info++
	}
}
