package engine

import (
	"fmt"
	"strings"
)

// Advice is one entry of a priority bucket. Vulnerability entries carry
// the full contextualized Recommendation; synthetic port/directory
// entries carry a summary-only Recommendation.
type Advice struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation *Recommendation `json:"recommendation"`
}

// RecommendationSet buckets advice into the three priority tiers.
type RecommendationSet struct {
	HighPriority   []Advice `json:"high_priority"`
	MediumPriority []Advice `json:"medium_priority"`
	LowPriority    []Advice `json:"low_priority"`
}

// BuildRecommendation produces the contextualized recommendation for a
// single finding: catalog lookup on the title alone (the matcher name
// is only known during bulk analysis), URL substitution in step text,
// and the severity timeframe. Placeholders stay in place when no URL is
// known.
func BuildRecommendation(catalog *Catalog, f Finding) *Recommendation {
	rec := catalog.Lookup(f.Title, "").Clone()

	if f.URL != "" {
		rec.AffectedURL = f.URL
		for i, step := range rec.Steps {
			rec.Steps[i] = strings.ReplaceAll(step, URLPlaceholder, f.URL)
		}
	}

	rec.Timeframe = f.Severity.Timeframe()
	return &rec
}

// BuildRecommendations assembles the priority buckets from the analyzed
// details: one entry per vulnerability, plus synthetic entries for
// risky open ports and exposed directories.
func BuildRecommendations(catalog *Catalog, details Details) RecommendationSet {
	var set RecommendationSet

	for _, vuln := range details.Vulnerabilities {
		title := vuln.Title
		if title == "" {
			title = "Unnamed vulnerability"
		}
		advice := Advice{
			Title:          title,
			Description:    vuln.Description,
			Recommendation: BuildRecommendation(catalog, vuln),
		}

		switch vuln.Severity {
		case SeverityCritical, SeverityHigh:
			set.HighPriority = append(set.HighPriority, advice)
		case SeverityMedium:
			set.MediumPriority = append(set.MediumPriority, advice)
		default:
			set.LowPriority = append(set.LowPriority, advice)
		}
	}

	for _, port := range details.OpenPorts {
		switch port.Port {
		case 22, 23, 3389, 5900:
			set.MediumPriority = append(set.MediumPriority, Advice{
				Title:       fmt.Sprintf("Remote Access Service on Port %d", port.Port),
				Description: fmt.Sprintf("Found %s running on port %d", port.Service, port.Port),
				Recommendation: &Recommendation{
					Summary: fmt.Sprintf("Restrict access to port %d to trusted IPs only and ensure strong authentication is in place.", port.Port),
				},
			})
		case 80, 443:
			set.LowPriority = append(set.LowPriority, Advice{
				Title:       fmt.Sprintf("Web Service on Port %d", port.Port),
				Description: fmt.Sprintf("Found %s running on port %d", port.Service, port.Port),
				Recommendation: &Recommendation{
					Summary: "Ensure the web server is properly configured with secure headers and up-to-date.",
				},
			})
		case 21, 20:
			set.MediumPriority = append(set.MediumPriority, Advice{
				Title:       fmt.Sprintf("FTP Service on Port %d", port.Port),
				Description: fmt.Sprintf("Found %s running on port %d", port.Service, port.Port),
				Recommendation: &Recommendation{
					Summary: "Consider replacing FTP with SFTP or FTPS for secure file transfers.",
				},
			})
		}
	}

	for _, dir := range details.InterestingDirectories {
		switch {
		case strings.Contains(dir.URL, ".git") || strings.Contains(dir.URL, ".env"):
			set.HighPriority = append(set.HighPriority, Advice{
				Title:       "Sensitive Information Exposure",
				Description: fmt.Sprintf("Found %s which may expose sensitive information", dir.URL),
				Recommendation: &Recommendation{
					Summary: fmt.Sprintf("Remove or restrict access to %s immediately.", dir.URL),
				},
			})
		case strings.Contains(dir.URL, "wp-admin") || strings.Contains(dir.URL, "admin"):
			set.MediumPriority = append(set.MediumPriority, Advice{
				Title:       "Admin Interface Exposed",
				Description: fmt.Sprintf("Found potential admin interface at %s", dir.URL),
				Recommendation: &Recommendation{
					Summary: "Restrict access to admin interfaces and use strong passwords and 2FA.",
				},
			})
		}
	}

	return set
}
