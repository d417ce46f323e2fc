package jsonoutput

import (
	"testing"

	"github.com/nurokhq/tagcheck/model"
)

func testInput() model.RenderReportInput {
	return model.RenderReportInput{
		Tag:             "v1.2.0",
		TagVersion:      "1.2.0",
		ManifestPath:    "pyproject.toml",
		ManifestVersion: "1.2.0",
		ModulePath:      "a2ui_pydantic/__init__.py",
		ModuleVersion:   "1.3.0",
		Comparisons: []model.Comparison{
			{Name: "tag vs manifest", LeftSource: "tag", LeftVersion: "1.2.0", RightSource: "manifest", RightVersion: "1.2.0", Passed: true},
			{Name: "tag vs module", LeftSource: "tag", LeftVersion: "1.2.0", RightSource: "module", RightVersion: "1.3.0", Passed: false},
			{Name: "manifest vs module", LeftSource: "manifest", LeftVersion: "1.2.0", RightSource: "module", RightVersion: "1.3.0", Passed: false},
		},
		Docs: model.DocsCheck{Path: "README.md", Present: true, Mentioned: false},
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(testInput(), "2026-01-02T03:04:05Z")

	if report.Passed {
		t.Fatal("report with mismatches must not be marked passed")
	}
	if report.GeneratedAt != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected timestamp: %q", report.GeneratedAt)
	}
	if report.Summary.TotalChecks != 3 || report.Summary.Matched != 1 || report.Summary.Mismatched != 2 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(report.Sources) != 3 || report.Sources[1].Version != "1.2.0" || report.Sources[2].Version != "1.3.0" {
		t.Fatalf("unexpected sources: %+v", report.Sources)
	}
	if report.Comparisons[0].Mismatch != "" {
		t.Fatalf("passing comparison must have no mismatch text: %+v", report.Comparisons[0])
	}
	if report.Comparisons[1].Mismatch == "" || report.Comparisons[2].Mismatch == "" {
		t.Fatalf("failing comparisons must carry mismatch text: %+v", report.Comparisons)
	}
	if report.Scan != nil {
		t.Fatal("scan should be omitted when not run")
	}
}

func TestBuildReportWithScan(t *testing.T) {
	input := testInput()
	input.Scan = &model.ScanReport{
		Root:         ".",
		Target:       "1.2.0",
		FilesScanned: 4,
		Hits: []model.ScanHit{
			{Path: "README.md", Line: 12, Match: "1.1.0"},
		},
	}

	report := BuildReport(input, "2026-01-02T03:04:05Z")

	if report.Scan == nil || report.Scan.FilesScanned != 4 {
		t.Fatalf("unexpected scan report: %+v", report.Scan)
	}
	if report.Scan.Target != "1.2.0" {
		t.Fatalf("scan target missing from JSON report: %+v", report.Scan)
	}
	if len(report.Scan.Hits) != 1 || report.Scan.Hits[0].Match != "1.1.0" {
		t.Fatalf("unexpected scan hits: %+v", report.Scan.Hits)
	}
}
