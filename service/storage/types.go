package storage

import (
	"context"
	"time"
)

// Service defines persistence and history query operations.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetRecentRuns(limit int) ([]RunSummary, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Vacuum(ctx context.Context) error
	Close() error
}

// SaveRunInput is the payload saved for a completed verification run.
type SaveRunInput struct {
	RunUUID         string
	Tag             string
	TagVersion      string
	ManifestPath    string
	ManifestVersion string
	ModulePath      string
	ModuleVersion   string
	DocsMentioned   bool
	MismatchCount   int
	Passed          bool
	Version         string
}

// RunSummary provides compact run metadata for history listings.
type RunSummary struct {
	RunID           int64
	RunUUID         string
	Tag             string
	TagVersion      string
	ManifestVersion string
	ModuleVersion   string
	MismatchCount   int
	Passed          bool
	RunTimestamp    time.Time
	Version         string
}
