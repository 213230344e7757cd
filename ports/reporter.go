package ports

import (
	"gridsift/domain/grid"
	"gridsift/domain/roster"
	"gridsift/domain/run"
)

// RunReporter persists the outputs of one extraction run into a fresh,
// write-once output location.
type RunReporter interface {
	// Dir returns the run's output directory.
	Dir() string

	// WriteSnapshot persists the bounded raw-grid slice for
	// diagnostics. Written before extraction so it survives runs that
	// fail on header location.
	WriteSnapshot(g grid.Grid) error

	// WriteTables persists the accepted and rejected record tables.
	WriteTables(accepted []roster.Record, rejected []roster.Rejected) error

	// WriteSummary persists the structured run summary and the
	// human-readable report.
	WriteSummary(s run.Summary) error
}

// ReporterFactory opens an independent write-once reporter per run.
// Callers running concurrently must obtain one reporter per input.
type ReporterFactory interface {
	// NewRun prepares a run directory. explicitDir == "" means a
	// fresh uniquely named directory under the factory's output root.
	NewRun(explicitDir string) (RunReporter, error)
}
