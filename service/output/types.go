package output

import (
	"github.com/nurokhq/tagcheck/model"
	jsonoutput "github.com/nurokhq/tagcheck/shared/json_output"
	reporttable "github.com/nurokhq/tagcheck/shared/report_table"
	"github.com/nurokhq/tagcheck/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing reports
type Renderer interface {
	DrawReportTable(input model.RenderReportInput)
	OutputReportJSON(input model.RenderReportInput) error
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawReportTable(input model.RenderReportInput) {
	reporttable.DrawReportTable(input)
}

func (r *realRenderer) OutputReportJSON(input model.RenderReportInput) error {
	return jsonoutput.OutputReportJSON(input)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderReport(input model.RenderReportInput) error
	Quiet() bool
	StopSpinner()
}
