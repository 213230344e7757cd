// Package run defines the per-run summary artifact: the structured
// record of one complete extraction pass over one input resource.
package run

import (
	"time"

	"gridsift/domain/roster"
)

// Summary captures everything a downstream collaborator may consume
// about a run: counts, detected metadata, the column mapping, and
// capability flags. It is created once at the end of a run and
// serialized write-once alongside the output tables.
type Summary struct {
	Input          string               `json:"input"`
	OutputDir      string               `json:"output_dir"`
	GroupNumber    string               `json:"group_number"`
	RowsTotal      int                  `json:"rows_total"`
	RowsAccepted   int                  `json:"rows_accepted"`
	RowsRejected   int                  `json:"rows_rejected"`
	ColumnMapping  roster.ColumnMapping `json:"columns_mapping"`
	HeaderRowIndex int                  `json:"header_row_index"`
	PhoneE164      bool                 `json:"phone_e164_available"`
	FillProfile    *FillProfile         `json:"fill_profile,omitempty"`
	Timestamp      string               `json:"timestamp"`
}

// FillProfile is a diagnostic view of how densely the canonical
// columns were populated across the partitioned rows.
type FillProfile struct {
	PerField map[roster.Field]float64 `json:"per_field"`
	Mean     float64                  `json:"mean"`
	Min      float64                  `json:"min"`
	Max      float64                  `json:"max"`
}

// NewSummary stamps a summary with the current time in RFC3339.
func NewSummary() Summary {
	return Summary{Timestamp: time.Now().Format(time.RFC3339)}
}

// Consistent reports whether the row counts satisfy the partitioning
// invariant rows_total == rows_accepted + rows_rejected.
func (s Summary) Consistent() bool {
	return s.RowsTotal == s.RowsAccepted+s.RowsRejected
}
