// Package verify coordinates version extraction, comparison, and reporting.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nurokhq/tagcheck/model"
	"github.com/nurokhq/tagcheck/service/docs"
	"github.com/nurokhq/tagcheck/service/manifest"
	"github.com/nurokhq/tagcheck/service/modulefile"
	"github.com/nurokhq/tagcheck/service/output"
	"github.com/nurokhq/tagcheck/service/scan"
	"github.com/nurokhq/tagcheck/service/storage"
	"github.com/nurokhq/tagcheck/shared/spinner"
)

// ErrMismatch indicates that at least one pairwise version comparison failed.
// Extraction failures are reported as their own errors before any comparison.
var ErrMismatch = errors.New("version verification failed")

// NewService creates a new verification orchestrator. storageSvc may be nil
// when history persistence is disabled.
func NewService(
	manifestSvc manifest.Service,
	moduleSvc modulefile.Service,
	docsSvc docs.Service,
	scanSvc scan.Service,
	outputSvc output.Service,
	storageSvc storage.Service,
	versionInfo model.VersionInfo,
) Service {
	return &service{
		manifestSvc: manifestSvc,
		moduleSvc:   moduleSvc,
		docsSvc:     docsSvc,
		scanSvc:     scanSvc,
		outputSvc:   outputSvc,
		storageSvc:  storageSvc,
		versionInfo: versionInfo,
	}
}

// ExtractTagVersion removes a single leading "v" from a git tag. Any other
// input is returned unchanged; no structural validation is performed.
func ExtractTagVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// Compare builds the three pairwise equality checks. Comparison is exact
// string equality; "1.0" and "1.0.0" are different versions.
func Compare(tagVersion, manifestVersion, moduleVersion string) []model.Comparison {
	return []model.Comparison{
		{
			Name:         "tag vs manifest",
			LeftSource:   "tag",
			LeftVersion:  tagVersion,
			RightSource:  "manifest",
			RightVersion: manifestVersion,
			Passed:       tagVersion == manifestVersion,
		},
		{
			Name:         "tag vs module",
			LeftSource:   "tag",
			LeftVersion:  tagVersion,
			RightSource:  "module",
			RightVersion: moduleVersion,
			Passed:       tagVersion == moduleVersion,
		},
		{
			Name:         "manifest vs module",
			LeftSource:   "manifest",
			LeftVersion:  manifestVersion,
			RightSource:  "module",
			RightVersion: moduleVersion,
			Passed:       manifestVersion == moduleVersion,
		},
	}
}

// Verify runs one verification pass. Missing mandatory files or patterns
// fail immediately; mismatches are collected so all three comparisons are
// always reported together.
func (s *service) Verify(flags model.Flags) error {
	if flags.Version {
		return s.versionWorkflow()
	}

	tagVersion := ExtractTagVersion(flags.Tag)

	manifestVersion, err := s.manifestSvc.ExtractVersion()
	if err != nil {
		return err
	}

	moduleVersion, err := s.moduleSvc.ExtractVersion()
	if err != nil {
		return err
	}

	docsResult, err := s.docsSvc.Check(tagVersion)
	if err != nil {
		// The docs check is advisory and must never fail the run.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	input := model.RenderReportInput{
		Tag:             flags.Tag,
		TagVersion:      tagVersion,
		ManifestPath:    s.manifestSvc.Path(),
		ManifestVersion: manifestVersion,
		ModulePath:      s.moduleSvc.Path(),
		ModuleVersion:   moduleVersion,
		Comparisons:     Compare(tagVersion, manifestVersion, moduleVersion),
		Docs:            docsResult,
	}

	if flags.Scan && s.scanSvc != nil {
		if !s.outputSvc.Quiet() {
			spinner.StartSpinner()
		}
		scanReport, err := s.scanSvc.Scan(tagVersion)
		s.outputSvc.StopSpinner()
		if err != nil {
			// The scan is advisory; report and continue.
			fmt.Fprintf(os.Stderr, "Warning: scan failed: %v\n", err)
		} else {
			input.Scan = scanReport
		}
	}

	if flags.Store && s.storageSvc != nil {
		if err := s.saveRun(flags, input); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to store run: %v\n", err)
		}
	}

	if err := s.outputSvc.RenderReport(input); err != nil {
		return err
	}

	if !input.Passed() {
		return fmt.Errorf("%w: %d of %d comparisons mismatched",
			ErrMismatch, len(input.Mismatches()), len(input.Comparisons))
	}

	return nil
}

func (s *service) versionWorkflow() error {
	s.outputSvc.StopSpinner()

	fmt.Printf("tagcheck version %s\n", s.versionInfo.Version)
	fmt.Printf("commit: %s\n", s.versionInfo.Commit)
	fmt.Printf("built at: %s\n", s.versionInfo.Date)

	return nil
}

func (s *service) saveRun(flags model.Flags, input model.RenderReportInput) error {
	_, err := s.storageSvc.SaveRun(context.Background(), storage.SaveRunInput{
		Tag:             flags.Tag,
		TagVersion:      input.TagVersion,
		ManifestPath:    input.ManifestPath,
		ManifestVersion: input.ManifestVersion,
		ModulePath:      input.ModulePath,
		ModuleVersion:   input.ModuleVersion,
		DocsMentioned:   input.Docs.Mentioned,
		MismatchCount:   len(input.Mismatches()),
		Passed:          input.Passed(),
		Version:         s.versionInfo.Version,
	})
	return err
}
