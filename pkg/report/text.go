package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/bountyx-ai/pkg/engine"
)

// writeText renders the plain-text report layout.
func writeText(w io.Writer, r *Report) error {
	var sb strings.Builder

	sb.WriteString("BountyX AI Analysis Report\n")
	sb.WriteString("=========================\n\n")
	sb.WriteString(fmt.Sprintf("Target: %s\n", r.Target))
	sb.WriteString(fmt.Sprintf("Timestamp: %s\n\n", r.Timestamp))

	sb.WriteString("Summary\n-------\n")
	if r.Summary.SubdomainCount != nil {
		sb.WriteString(fmt.Sprintf("Subdomains found: %d\n", *r.Summary.SubdomainCount))
	}
	if r.Summary.LiveHostCount != nil {
		sb.WriteString(fmt.Sprintf("Live hosts found: %d\n", *r.Summary.LiveHostCount))
	}
	if r.Summary.OpenPortCount != nil {
		sb.WriteString(fmt.Sprintf("Open ports found: %d\n", *r.Summary.OpenPortCount))
	}
	if r.Summary.DirectoryCount != nil {
		sb.WriteString(fmt.Sprintf("Directories found: %d\n", *r.Summary.DirectoryCount))
	}
	if r.Summary.VulnerabilityCount != nil {
		vc := r.Summary.VulnerabilityCount
		sb.WriteString("Vulnerabilities found:\n")
		sb.WriteString(fmt.Sprintf("  Critical: %d\n", vc.Critical))
		sb.WriteString(fmt.Sprintf("  High: %d\n", vc.High))
		sb.WriteString(fmt.Sprintf("  Medium: %d\n", vc.Medium))
		sb.WriteString(fmt.Sprintf("  Low: %d\n", vc.Low))
		sb.WriteString(fmt.Sprintf("  Info: %d\n", vc.Info))
	}
	sb.WriteString("\n")

	if r.AIEnhanced != nil {
		sb.WriteString("AI-Enhanced Analysis\n-------------------\n")
		sb.WriteString(fmt.Sprintf("Model: %s\n\n", r.AIEnhanced.Model))
		sb.WriteString(r.AIEnhanced.Analysis + "\n\n")
	}

	sb.WriteString("Priorities\n----------\n")
	writeActions(&sb, "Immediate Actions (24-48 hours):", r.Priorities.ImmediateAction)
	writeActions(&sb, "Short Term Actions (1-2 weeks):", r.Priorities.ShortTerm)
	writeActions(&sb, "Long Term Actions (1-3 months):", r.Priorities.LongTerm)

	sb.WriteString("Details\n-------\n")

	if len(r.Details.InterestingSubdomains) > 0 {
		sb.WriteString("Interesting Subdomains:\n")
		for _, subdomain := range r.Details.InterestingSubdomains {
			sb.WriteString(fmt.Sprintf("- %s\n", subdomain))
		}
		sb.WriteString("\n")
	}

	if len(r.Details.OpenPorts) > 0 {
		sb.WriteString("Open Ports:\n")
		for _, port := range r.Details.OpenPorts {
			sb.WriteString(fmt.Sprintf("- Port %d: %s (%s)\n", port.Port, port.Service, port.Version))
		}
		sb.WriteString("\n")
	}

	if len(r.Details.InterestingDirectories) > 0 {
		sb.WriteString("Interesting Directories:\n")
		for _, dir := range r.Details.InterestingDirectories {
			sb.WriteString(fmt.Sprintf("- %s [Status: %s]\n", dir.URL, statusLabel(dir.Status)))
		}
		sb.WriteString("\n")
	}

	if len(r.Details.Vulnerabilities) > 0 {
		sb.WriteString("Vulnerabilities:\n")
		for _, vuln := range r.Details.Vulnerabilities {
			title := vuln.Title
			if title == "" {
				title = "Unnamed vulnerability"
			}
			desc := vuln.Description
			if desc == "" {
				desc = "No description"
			}
			sb.WriteString(fmt.Sprintf("- %s [%s]\n", title, strings.ToUpper(string(vuln.Severity))))
			sb.WriteString(fmt.Sprintf("  Description: %s\n", desc))
			if vuln.Recommendation != nil {
				sb.WriteString(fmt.Sprintf("  Recommendation: %s\n", vuln.Recommendation.Summary))
			}
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeActions(sb *strings.Builder, heading string, actions []engine.TimedAction) {
	sb.WriteString(heading + "\n")
	for _, action := range actions {
		sb.WriteString(fmt.Sprintf("- %s\n", action.Title))
		sb.WriteString(fmt.Sprintf("  Description: %s\n", action.Description))
		if action.Recommendation != nil {
			sb.WriteString(fmt.Sprintf("  Recommendation: %s\n", action.Recommendation.Summary))
		}
		sb.WriteString("\n")
	}
}

func statusLabel(status int) string {
	if status == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d", status)
}
