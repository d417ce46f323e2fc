package model

// ReportJSON is the machine-readable verification report emitted with
// --output json.
type ReportJSON struct {
	Tag         string           `json:"tag"`
	TagVersion  string           `json:"tag_version"`
	GeneratedAt string           `json:"generated_at"`
	Passed      bool             `json:"passed"`
	Sources     []SourceJSON     `json:"sources"`
	Comparisons []ComparisonJSON `json:"comparisons"`
	Docs        DocsJSON         `json:"docs"`
	Scan        *ScanReportJSON  `json:"scan,omitempty"`
	Summary     ReportSummary    `json:"summary"`
}

// SourceJSON describes one file a version string was extracted from.
type SourceJSON struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Version string `json:"version"`
}

// ComparisonJSON is one pairwise check in the JSON report.
type ComparisonJSON struct {
	Name     string `json:"name"`
	Left     string `json:"left"`
	Right    string `json:"right"`
	Passed   bool   `json:"passed"`
	Mismatch string `json:"mismatch,omitempty"`
}

// DocsJSON is the advisory documentation check in the JSON report.
type DocsJSON struct {
	Path      string `json:"path"`
	Present   bool   `json:"present"`
	Mentioned bool   `json:"mentioned"`
}

// ScanReportJSON is the advisory stale-version scan in the JSON report.
type ScanReportJSON struct {
	Root         string        `json:"root"`
	Target       string        `json:"target"`
	FilesScanned int           `json:"files_scanned"`
	Hits         []ScanHitJSON `json:"hits"`
}

// ScanHitJSON is one stale version occurrence in the JSON report.
type ScanHitJSON struct {
	Path  string `json:"path"`
	Line  int    `json:"line"`
	Match string `json:"match"`
}

// ReportSummary aggregates check counts for the JSON report.
type ReportSummary struct {
	TotalChecks int `json:"total_checks"`
	Matched     int `json:"matched"`
	Mismatched  int `json:"mismatched"`
}
