// Package report persists the outputs of an extraction run: the
// accepted/rejected tables, the diagnostic snapshot, the structured
// summary, and a human-readable digest.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gridsift/domain/grid"
	"gridsift/domain/roster"
	"gridsift/domain/run"
	"gridsift/internal/errors"
	"gridsift/ports"
)

const (
	acceptedFile = "cleaned_rows.csv"
	rejectedFile = "errors.csv"
	snapshotFile = "input_snapshot.csv"
	summaryFile  = "run_summary.json"
	reportFile   = "run_report.md"
)

// Factory opens write-once run directories under an output root.
type Factory struct {
	outputRoot string
}

// NewFactory creates a reporter factory rooted at outputRoot.
func NewFactory(outputRoot string) *Factory {
	return &Factory{outputRoot: outputRoot}
}

// NewRun prepares a fresh run directory. With explicitDir == "" a
// uniquely named directory (timestamp plus a short random suffix) is
// created under the output root, so concurrent runs can never
// collide. A caller-specified directory is created if absent but is
// refused when it already holds a prior run's summary: outputs are
// write-once, never overwritten.
func (f *Factory) NewRun(explicitDir string) (ports.RunReporter, error) {
	dir := explicitDir
	if dir == "" {
		name := fmt.Sprintf("run_%s_%s",
			time.Now().Format("20060102_150405"), uuid.NewString()[:8])
		dir = filepath.Join(f.outputRoot, name)
	}
	if _, err := os.Stat(filepath.Join(dir, summaryFile)); err == nil {
		return nil, errors.Newf(errors.CodeOutputConflict,
			"output directory %s already contains a run summary", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	return &Reporter{dir: dir}, nil
}

// Reporter writes one run's outputs into its directory.
type Reporter struct {
	dir string
}

// Dir returns the run's output directory.
func (r *Reporter) Dir() string { return r.dir }

// WriteSnapshot persists the bounded raw-grid slice as CSV for
// post-mortem inspection.
func (r *Reporter) WriteSnapshot(g grid.Grid) error {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = row
	}
	return r.writeCSV(snapshotFile, nil, rows)
}

// WriteTables persists the accepted and rejected record tables.
func (r *Reporter) WriteTables(accepted []roster.Record, rejected []roster.Rejected) error {
	header := []string{"person_code", "full_name", "email", "phone", "group_number"}

	acceptedRows := make([][]string, 0, len(accepted))
	for _, rec := range accepted {
		acceptedRows = append(acceptedRows, recordRow(rec))
	}
	if err := r.writeCSV(acceptedFile, header, acceptedRows); err != nil {
		return err
	}

	rejectedRows := make([][]string, 0, len(rejected))
	for _, rej := range rejected {
		rejectedRows = append(rejectedRows, append(recordRow(rej.Record), rej.Reason))
	}
	return r.writeCSV(rejectedFile, append(header, "reason"), rejectedRows)
}

// WriteSummary persists the structured summary and the markdown
// digest.
func (r *Reporter) WriteSummary(s run.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode run summary")
	}
	if err := os.WriteFile(filepath.Join(r.dir, summaryFile), data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write run summary")
	}
	md := renderMarkdown(s)
	if err := os.WriteFile(filepath.Join(r.dir, reportFile), []byte(md), 0o644); err != nil {
		return errors.Wrap(err, "failed to write run report")
	}
	return nil
}

func recordRow(rec roster.Record) []string {
	return []string{rec.PersonCode, rec.FullName, rec.Email, rec.Phone, rec.GroupNumber}
}

func (r *Reporter) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header != nil {
		if err := w.Write(header); err != nil {
			return errors.Wrapf(err, "failed to write %s", name)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "failed to flush %s", name)
}
