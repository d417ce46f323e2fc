// Package jsonoutput builds and prints machine-readable verification reports.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nurokhq/tagcheck/model"
)

// OutputReportJSON prints the verification report as indented JSON on stdout.
func OutputReportJSON(input model.RenderReportInput) error {
	report := BuildReport(input, time.Now().UTC().Format(time.RFC3339))
	return printJSON(report)
}

// BuildReport builds the JSON report model from a render input.
func BuildReport(input model.RenderReportInput, generatedAt string) model.ReportJSON {
	matched := 0
	for _, c := range input.Comparisons {
		if c.Passed {
			matched++
		}
	}

	report := model.ReportJSON{
		Tag:         input.Tag,
		TagVersion:  input.TagVersion,
		GeneratedAt: generatedAt,
		Passed:      input.Passed(),
		Sources: []model.SourceJSON{
			{Name: "tag", Path: input.Tag, Version: input.TagVersion},
			{Name: "manifest", Path: input.ManifestPath, Version: input.ManifestVersion},
			{Name: "module", Path: input.ModulePath, Version: input.ModuleVersion},
		},
		Comparisons: mapComparisons(input.Comparisons),
		Docs: model.DocsJSON{
			Path:      input.Docs.Path,
			Present:   input.Docs.Present,
			Mentioned: input.Docs.Mentioned,
		},
		Summary: model.ReportSummary{
			TotalChecks: len(input.Comparisons),
			Matched:     matched,
			Mismatched:  len(input.Comparisons) - matched,
		},
	}

	if input.Scan != nil {
		report.Scan = &model.ScanReportJSON{
			Root:         input.Scan.Root,
			Target:       input.Scan.Target,
			FilesScanned: input.Scan.FilesScanned,
			Hits:         mapScanHits(input.Scan.Hits),
		}
	}

	return report
}

func mapComparisons(comparisons []model.Comparison) []model.ComparisonJSON {
	out := make([]model.ComparisonJSON, 0, len(comparisons))
	for _, c := range comparisons {
		out = append(out, model.ComparisonJSON{
			Name:     c.Name,
			Left:     c.LeftVersion,
			Right:    c.RightVersion,
			Passed:   c.Passed,
			Mismatch: c.Mismatch(),
		})
	}
	return out
}

func mapScanHits(hits []model.ScanHit) []model.ScanHitJSON {
	out := make([]model.ScanHitJSON, 0, len(hits))
	for _, h := range hits {
		out = append(out, model.ScanHitJSON{Path: h.Path, Line: h.Line, Match: h.Match})
	}
	return out
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
