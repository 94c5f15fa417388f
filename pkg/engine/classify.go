package engine

import "strings"

// Keyword lists for the interest heuristics. Matching is lower-cased
// substring search; first hit wins so a name matching several keywords
// is only flagged once.
var subdomainKeywords = []string{
	"admin", "dev", "staging", "test", "beta", "api", "internal",
	"vpn", "mail", "remote", "portal", "intranet", "secure", "login",
	"db", "database", "auth", "jenkins", "git", "svn", "jira", "confluence",
}

var directoryKeywords = []string{
	".git", ".env", "wp-admin", "admin", "backup", "db", "config",
	"dashboard", "login", "api", "test", "dev", "staging", "beta",
	"phpinfo", "phpmyadmin", "jenkins", "jira", "confluence",
	"password", "credentials", "sql", "database",
}

// InterestingSubdomains returns the subdomains worth human review,
// preserving input order.
func InterestingSubdomains(subdomains []string) []string {
	var interesting []string
	for _, subdomain := range subdomains {
		lower := strings.ToLower(subdomain)
		for _, keyword := range subdomainKeywords {
			if strings.Contains(lower, keyword) {
				interesting = append(interesting, subdomain)
				break
			}
		}
	}
	return interesting
}

// InterestingDirectories returns the enumerated directories whose URL
// hits a keyword. A missing URL is treated as empty and never matches.
func InterestingDirectories(directories []DirectoryEntry) []DirectoryEntry {
	var interesting []DirectoryEntry
	for _, directory := range directories {
		lower := strings.ToLower(directory.URL)
		for _, keyword := range directoryKeywords {
			if strings.Contains(lower, keyword) {
				interesting = append(interesting, directory)
				break
			}
		}
	}
	return interesting
}

// PortInfo is one open port flattened out of the per-host scan layout.
type PortInfo struct {
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// FlattenPorts flattens the nested host/port layout into a single
// ordered list, defaulting missing fields.
func FlattenPorts(scan *PortScan) []PortInfo {
	var ports []PortInfo
	for _, host := range scan.ScanResults {
		hostname := host.Host
		if hostname == "" {
			hostname = "unknown"
		}
		for _, record := range host.Ports {
			service := record.Service
			if service == "" {
				service = "unknown"
			}
			version := record.Version
			if version == "" {
				version = "unknown"
			}
			ports = append(ports, PortInfo{
				Host:    hostname,
				Port:    record.Port,
				Service: service,
				Version: version,
			})
		}
	}
	return ports
}
