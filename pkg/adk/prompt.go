package adk

import (
	"fmt"
	"strings"

	"github.com/user/bountyx-ai/pkg/engine"
)

const promptPreamble = `You are a senior cybersecurity expert analyzing bug bounty scan results.
Based on the following findings, provide a comprehensive analysis with detailed remediation steps.
Focus on actionable recommendations with code examples where appropriate.

Your response should include:
1. A concise summary of the most critical findings
2. Detailed remediation steps for each vulnerability, prioritized by severity
3. Code examples to fix the most critical issues
4. References to security best practices and standards
5. A recommended timeline for addressing each category of findings

`

// BuildPrompt renders the finished analysis into the enhancement prompt
// sent to the AI provider.
func BuildPrompt(a *engine.Analysis) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)

	sb.WriteString("\n## SCAN SUMMARY:\n")
	summary := a.Summary
	if summary.SubdomainCount != nil {
		sb.WriteString(fmt.Sprintf("- %d subdomains discovered\n", *summary.SubdomainCount))
	}
	if summary.LiveHostCount != nil {
		sb.WriteString(fmt.Sprintf("- %d live hosts found\n", *summary.LiveHostCount))
	}
	if summary.OpenPortCount != nil {
		sb.WriteString(fmt.Sprintf("- %d open ports detected\n", *summary.OpenPortCount))
	}
	if summary.DirectoryCount != nil {
		sb.WriteString(fmt.Sprintf("- %d directories enumerated\n", *summary.DirectoryCount))
	}
	if summary.VulnerabilityCount != nil {
		vc := summary.VulnerabilityCount
		sb.WriteString(fmt.Sprintf("- Vulnerabilities: %d critical, %d high, %d medium, %d low, %d info\n",
			vc.Critical, vc.High, vc.Medium, vc.Low, vc.Info))
	}
	sb.WriteString("\n")

	if len(a.Details.Vulnerabilities) > 0 {
		sb.WriteString("Vulnerabilities:\n")
		for _, vuln := range a.Details.Vulnerabilities {
			desc := vuln.Description
			if desc == "" {
				desc = "No description"
			}
			sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", vuln.Title, strings.ToUpper(string(vuln.Severity)), desc))
		}
		sb.WriteString("\n")
	}

	if len(a.Details.OpenPorts) > 0 {
		sb.WriteString("Open Ports:\n")
		for _, port := range a.Details.OpenPorts {
			sb.WriteString(fmt.Sprintf("- Port %d: %s (%s)\n", port.Port, port.Service, port.Version))
		}
		sb.WriteString("\n")
	}

	if len(a.Details.InterestingDirectories) > 0 {
		sb.WriteString("Interesting Directories:\n")
		for _, dir := range a.Details.InterestingDirectories {
			sb.WriteString(fmt.Sprintf("- %s [Status: %s]\n", dir.URL, statusLabel(dir.Status)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Based on these findings, please provide:\n")
	sb.WriteString("1. A concise analysis of the security posture\n")
	sb.WriteString("2. Prioritized recommendations (immediate, short-term, and long-term)\n")
	sb.WriteString("3. Any patterns or notable security concerns\n")

	return sb.String()
}

func statusLabel(status int) string {
	if status == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d", status)
}
