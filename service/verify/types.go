package verify

import (
	"github.com/nurokhq/tagcheck/model"
	"github.com/nurokhq/tagcheck/service/docs"
	"github.com/nurokhq/tagcheck/service/manifest"
	"github.com/nurokhq/tagcheck/service/modulefile"
	"github.com/nurokhq/tagcheck/service/output"
	"github.com/nurokhq/tagcheck/service/scan"
	"github.com/nurokhq/tagcheck/service/storage"
)

type service struct {
	manifestSvc manifest.Service
	moduleSvc   modulefile.Service
	docsSvc     docs.Service
	scanSvc     scan.Service
	outputSvc   output.Service
	storageSvc  storage.Service
	versionInfo model.VersionInfo
}

// Service is the interface for the verification orchestrator.
type Service interface {
	Verify(flags model.Flags) error
}
