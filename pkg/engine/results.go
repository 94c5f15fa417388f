package engine

// ScanResults is the in-memory snapshot of one target's scan artifacts.
// Any section may be nil; a nil section is left out of the analysis
// entirely rather than zero-filled.
type ScanResults struct {
	Subdomains      *SubdomainScan
	Ports           *PortScan
	Directories     *DirectoryScan
	LiveHosts       *LiveHostScan
	Vulnerabilities []RawScanBundle
}

// Empty reports whether no section was loaded at all.
func (r *ScanResults) Empty() bool {
	return r.Subdomains == nil && r.Ports == nil && r.Directories == nil &&
		r.LiveHosts == nil && len(r.Vulnerabilities) == 0
}

// SubdomainScan is the subdomain enumeration artifact.
type SubdomainScan struct {
	Subdomains []string `json:"subdomains"`
}

// PortScan is the port scan artifact, grouped per host.
type PortScan struct {
	ScanResults []HostPorts `json:"scan_results"`
}

type HostPorts struct {
	Host  string       `json:"host"`
	Ports []PortRecord `json:"ports"`
}

type PortRecord struct {
	Port    int    `json:"port"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// DirectoryScan is the directory enumeration artifact.
type DirectoryScan struct {
	DirectoryScan []DirectoryEntry `json:"directory_scan"`
}

type DirectoryEntry struct {
	URL    string `json:"url"`
	Status int    `json:"status,omitempty"`
}

// LiveHostScan is the live host probe artifact.
type LiveHostScan struct {
	LiveHosts []string `json:"live_hosts"`
}
