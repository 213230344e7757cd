package grid

// ScanBounds limits how much of a grid a scanning pass may visit. The
// bounds are a cost control on arbitrarily large sheets, not a
// correctness requirement.
type ScanBounds struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// DefaultHeaderBounds returns the default region scanned for the
// header row.
func DefaultHeaderBounds() ScanBounds {
	return ScanBounds{Rows: 60, Cols: 40}
}

// DefaultMetadataBounds returns the default top-left block scanned for
// the group-number label.
func DefaultMetadataBounds() ScanBounds {
	return ScanBounds{Rows: 12, Cols: 8}
}

// DefaultSnapshotBounds returns the default slice size written to the
// diagnostic input snapshot.
func DefaultSnapshotBounds() ScanBounds {
	return ScanBounds{Rows: 80, Cols: 20}
}
