package ports

// PhoneNormalizer canonicalizes free-text phone values. Implementations
// must be best-effort and total: Clean never fails, it degrades to a
// weaker normalization instead.
type PhoneNormalizer interface {
	// Clean returns the canonical form of raw for the given default
	// region hint (e.g. "CA").
	Clean(raw, region string) string

	// Enhanced reports whether full parsing/validation is available,
	// recorded in the run summary as a capability flag.
	Enhanced() bool
}
