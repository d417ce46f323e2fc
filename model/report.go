package model

// Comparison is one pairwise equality check between two version sources.
type Comparison struct {
	Name         string
	LeftSource   string
	LeftVersion  string
	RightSource  string
	RightVersion string
	Passed       bool
}

// Mismatch returns the human-readable description of a failed comparison.
// The empty string is returned for passing comparisons.
func (c Comparison) Mismatch() string {
	if c.Passed {
		return ""
	}
	return c.LeftSource + " version (" + c.LeftVersion + ") does not match " +
		c.RightSource + " version (" + c.RightVersion + ")"
}

// DocsCheck is the advisory documentation result. It never affects the
// process exit status.
type DocsCheck struct {
	Path      string
	Present   bool
	Mentioned bool
}

// ScanHit is one stale version-like string found during a repository scan.
type ScanHit struct {
	Path  string
	Line  int
	Match string
}

// ScanReport summarizes an advisory stale-version scan.
type ScanReport struct {
	Root         string
	Target       string
	FilesScanned int
	Hits         []ScanHit
}

// RenderReportInput carries everything needed to render a verification report.
type RenderReportInput struct {
	Tag             string
	TagVersion      string
	ManifestPath    string
	ManifestVersion string
	ModulePath      string
	ModuleVersion   string
	Comparisons     []Comparison
	Docs            DocsCheck
	Scan            *ScanReport
}

// Passed reports whether all mandatory pairwise comparisons succeeded.
func (r RenderReportInput) Passed() bool {
	for _, c := range r.Comparisons {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Mismatches returns the descriptions of all failed comparisons, in
// comparison order.
func (r RenderReportInput) Mismatches() []string {
	var out []string
	for _, c := range r.Comparisons {
		if !c.Passed {
			out = append(out, c.Mismatch())
		}
	}
	return out
}
