package engine

// Analysis is the full result of one analyzer run. It is rebuilt from
// scratch per invocation; there is no cross-run state.
type Analysis struct {
	Summary         Summary           `json:"summary"`
	Details         Details           `json:"details"`
	Recommendations RecommendationSet `json:"recommendations"`
	Priorities      Priorities        `json:"priorities"`
	AIEnhanced      *AIEnhanced       `json:"ai_enhanced,omitempty"`
}

// Summary holds the per-section counts. Sections absent from the input
// stay nil and are omitted from output.
type Summary struct {
	SubdomainCount     *int           `json:"subdomain_count,omitempty"`
	OpenPortCount      *int           `json:"open_port_count,omitempty"`
	DirectoryCount     *int           `json:"directory_count,omitempty"`
	LiveHostCount      *int           `json:"live_host_count,omitempty"`
	VulnerabilityCount *SeverityCount `json:"vulnerability_count,omitempty"`
}

// Details holds the flagged items per section.
type Details struct {
	InterestingSubdomains  []string         `json:"interesting_subdomains,omitempty"`
	OpenPorts              []PortInfo       `json:"open_ports,omitempty"`
	InterestingDirectories []DirectoryEntry `json:"interesting_directories,omitempty"`
	Vulnerabilities        []Finding        `json:"vulnerabilities,omitempty"`
}

// AIEnhanced carries the optional best-effort AI summary of a run.
type AIEnhanced struct {
	Model    string `json:"model"`
	Analysis string `json:"analysis"`
}

// Analyzer runs the batch pipeline: normalize, classify, recommend,
// prioritize. It holds no state between runs besides the catalog, which
// is read-only.
type Analyzer struct {
	catalog *Catalog
}

// NewAnalyzer creates an analyzer with the built-in remediation
// catalog.
func NewAnalyzer() *Analyzer {
	return &Analyzer{catalog: DefaultCatalog()}
}

// Catalog exposes the analyzer's remediation catalog.
func (a *Analyzer) Catalog() *Catalog {
	return a.catalog
}

// Analyze runs the full pipeline over one scan snapshot. Malformed or
// missing input degrades to empty sections; this never fails.
func (a *Analyzer) Analyze(results *ScanResults) *Analysis {
	analysis := &Analysis{}

	if results.Subdomains != nil {
		count := len(results.Subdomains.Subdomains)
		analysis.Summary.SubdomainCount = &count
		analysis.Details.InterestingSubdomains = InterestingSubdomains(results.Subdomains.Subdomains)
	}

	if results.Ports != nil {
		analysis.Details.OpenPorts = FlattenPorts(results.Ports)
		count := 0
		for _, host := range results.Ports.ScanResults {
			count += len(host.Ports)
		}
		analysis.Summary.OpenPortCount = &count
	}

	if results.Directories != nil {
		count := len(results.Directories.DirectoryScan)
		analysis.Summary.DirectoryCount = &count
		analysis.Details.InterestingDirectories = InterestingDirectories(results.Directories.DirectoryScan)
	}

	if results.LiveHosts != nil {
		count := len(results.LiveHosts.LiveHosts)
		analysis.Summary.LiveHostCount = &count
	}

	if results.Vulnerabilities != nil {
		analysis.Details.Vulnerabilities = Normalize(results.Vulnerabilities, a.catalog)
		counts := &SeverityCount{}
		for _, vuln := range analysis.Details.Vulnerabilities {
			counts.Add(vuln.Severity)
		}
		analysis.Summary.VulnerabilityCount = counts
	}

	analysis.Recommendations = BuildRecommendations(a.catalog, analysis.Details)
	analysis.Priorities = Prioritize(analysis.Recommendations)

	return analysis
}
