// Package output provides a service for rendering results to the console.
package output

import (
	"github.com/nurokhq/tagcheck/model"
)

// NewService creates a new output service with the specified format
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:   f,
		renderer: &realRenderer{},
	}
}

func (s *service) RenderReport(input model.RenderReportInput) error {
	if s.format == FormatJSON {
		return s.renderer.OutputReportJSON(input)
	}
	s.renderer.DrawReportTable(input)
	return nil
}

// Quiet reports whether progress output (banner, spinner) should be
// suppressed to keep stdout machine-readable.
func (s *service) Quiet() bool {
	return s.format == FormatJSON
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
