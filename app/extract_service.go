// Package app orchestrates extraction runs over the ports.
package app

import (
	"context"
	"log"
	"strings"

	"gridsift/domain/roster"
	"gridsift/domain/run"
	"gridsift/internal/config"
	"gridsift/internal/errors"
	"gridsift/internal/profile"
	"gridsift/ports"
)

// ExtractService runs the extraction pipeline end-to-end for one
// input grid. It is stateless across runs: every invocation gets its
// own reporter and in-memory state, so concurrent callers need no
// synchronization here.
type ExtractService struct {
	reader    ports.GridReader
	phone     ports.PhoneNormalizer
	reporters ports.ReporterFactory
	cfg       config.ExtractConfig
}

// ExtractRequest defines the inputs for one extraction run.
type ExtractRequest struct {
	InputPath string
	Sheet     string // worksheet name, "" for the first sheet
	OutputDir string // "" for a fresh uniquely named directory

	// RequiredFields lists canonical fields the caller demands; the
	// run fails when any of them cannot be mapped to a column.
	RequiredFields []roster.Field
}

// NewExtractService creates an extraction service.
func NewExtractService(reader ports.GridReader, phone ports.PhoneNormalizer,
	reporters ports.ReporterFactory, cfg config.ExtractConfig) *ExtractService {
	return &ExtractService{
		reader:    reader,
		phone:     phone,
		reporters: reporters,
		cfg:       cfg,
	}
}

// Run processes one input resource end-to-end and returns the run
// summary. Fatal preconditions (missing input, unlocatable header,
// missing demanded columns) abort with a coded error; when the header
// cannot be located the diagnostic snapshot has already been written
// for post-mortem inspection.
func (s *ExtractService) Run(ctx context.Context, req ExtractRequest) (*run.Summary, error) {
	// Step 1: load the raw grid. Nothing is written when the input
	// itself is unusable.
	g, err := s.reader.ReadGrid(req.InputPath, req.Sheet)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: open the write-once run directory and persist the
	// diagnostic snapshot before any scanning happens.
	reporter, err := s.reporters.NewRun(req.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := reporter.WriteSnapshot(g.TopLeft(s.cfg.SnapshotBounds)); err != nil {
		return nil, err
	}

	// Step 3: scan the top block for the group number. Optional, so
	// an empty result is carried through, not raised.
	groupNumber := roster.ScanGroupNumber(g, s.cfg.MetadataBounds)

	// Step 4: locate the header row. Fatal on miss; the snapshot
	// stays behind for post-mortem.
	headerIdx, err := roster.LocateHeader(g, s.cfg.HeaderBounds)
	if err != nil {
		return nil, errors.Wrapf(err, "extraction of %s failed", req.InputPath)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 5: map canonical fields to columns and enforce the
	// caller's demanded fields.
	mapping := roster.MapColumns(g.Row(headerIdx))
	if missing := missingFields(mapping, req.RequiredFields); len(missing) > 0 {
		return nil, errors.Newf(errors.CodeRequiredColumnsMissing,
			"required columns not found in header: %s", strings.Join(missing, ", "))
	}

	// Step 6: build the working table and clean phone values.
	records := roster.BuildTable(g, headerIdx, mapping, groupNumber)
	for i := range records {
		records[i].Phone = s.phone.Clean(records[i].Phone, s.cfg.PhoneRegion)
	}

	// Step 7: partition into accepted and rejected sets.
	accepted, rejected := roster.Partition(records)

	// Step 8: assemble and persist the summary.
	summary := run.NewSummary()
	summary.Input = req.InputPath
	summary.OutputDir = reporter.Dir()
	summary.GroupNumber = groupNumber
	summary.RowsTotal = len(accepted) + len(rejected)
	summary.RowsAccepted = len(accepted)
	summary.RowsRejected = len(rejected)
	summary.ColumnMapping = mapping
	summary.HeaderRowIndex = headerIdx
	summary.PhoneE164 = s.phone.Enhanced()
	summary.FillProfile = profile.FillRates(accepted, rejected)

	if err := reporter.WriteTables(accepted, rejected); err != nil {
		return nil, err
	}
	if err := reporter.WriteSummary(summary); err != nil {
		return nil, err
	}

	log.Printf("[Extract] %s: %d accepted, %d rejected, group_number=%q -> %s",
		req.InputPath, len(accepted), len(rejected), groupNumber, reporter.Dir())
	return &summary, nil
}

func missingFields(mapping roster.ColumnMapping, required []roster.Field) []string {
	var missing []string
	for _, field := range required {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, string(field))
		}
	}
	return missing
}
