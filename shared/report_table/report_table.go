// Package reporttable renders verification results in a table format.
package reporttable

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nurokhq/tagcheck/model"
)

// DrawReportTable renders the verification report to stdout: extracted
// versions, the three pairwise checks, the advisory docs result, and the
// final verdict with remediation hints on failure.
func DrawReportTable(input model.RenderReportInput) {
	fmt.Printf("\n🔍 Verifying version consistency for tag: %s\n", input.Tag)
	fmt.Printf("   Extracted version: %s\n", input.TagVersion)

	drawSourcesTable(input)
	drawComparisons(input.Comparisons)
	drawDocsLine(input.Docs, input.TagVersion)

	if input.Scan != nil {
		DrawScanTable(input.Scan)
	}

	if input.Passed() {
		fmt.Println("\n✅ All version checks passed!")
		return
	}

	fmt.Println("\n" + text.FgRed.Sprint("❌ Version verification failed:"))
	for _, msg := range input.Mismatches() {
		fmt.Printf("   ❌ %s\n", msg)
	}

	fmt.Println("\n💡 Please update the version in:")
	fmt.Printf("   - %s\n", input.ManifestPath)
	fmt.Printf("   - %s\n", input.ModulePath)
	fmt.Printf("   - %s (if version is mentioned)\n", input.Docs.Path)
}

func drawSourcesTable(input model.RenderReportInput) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Source", "Path", "Version"})
	t.AppendRow(table.Row{"tag", input.Tag, input.TagVersion})
	t.AppendRow(table.Row{"manifest", input.ManifestPath, input.ManifestVersion})
	t.AppendRow(table.Row{"module", input.ModulePath, input.ModuleVersion})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func drawComparisons(comparisons []model.Comparison) {
	for _, c := range comparisons {
		if c.Passed {
			fmt.Println(text.FgGreen.Sprintf("✅ %s and %s versions match", c.LeftSource, c.RightSource))
		} else {
			fmt.Println(text.FgRed.Sprintf("❌ %s", c.Mismatch()))
		}
	}
}

func drawDocsLine(docs model.DocsCheck, version string) {
	if !docs.Present {
		return
	}
	if docs.Mentioned {
		fmt.Printf("✅ %s seems to contain the correct version.\n", docs.Path)
		return
	}
	fmt.Println(text.FgYellow.Sprintf(
		"⚠️  Warning: version %s not found in %s. Please check if it needs to be updated.",
		version, docs.Path))
}

// DrawScanTable renders stale-version scan hits. No hits prints a single
// confirmation line.
func DrawScanTable(report *model.ScanReport) {
	fmt.Printf("\n🔎 Stale version scan (%d files under %s)\n", report.FilesScanned, report.Root)

	if len(report.Hits) == 0 {
		fmt.Println(text.FgGreen.Sprint("✅ No stale version strings found"))
		return
	}

	fmt.Println(text.FgYellow.Sprintf("⚠️  %d version-like strings differ from %s (advisory)",
		len(report.Hits), report.Target))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Line", "Match"})
	for _, h := range report.Hits {
		t.AppendRow(table.Row{h.Path, h.Line, h.Match})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
