// Package phone provides the injectable phone normalization
// strategies: full E.164 parsing when available, digit stripping
// otherwise.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// E164Normalizer canonicalizes phone values into E.164 using
// libphonenumber metadata. It never fails: anything that does not
// parse or validate degrades to the digit-stripped input.
type E164Normalizer struct{}

// NewE164Normalizer returns the enhanced normalizer.
func NewE164Normalizer() *E164Normalizer {
	return &E164Normalizer{}
}

// Enhanced reports that full parsing and validation are available.
func (n *E164Normalizer) Enhanced() bool { return true }

// Clean strips the raw value to digits and a leading plus, then
// attempts to parse it against the region hint. Valid numbers come
// back in E.164; everything else comes back stripped.
func (n *E164Normalizer) Clean(raw, region string) string {
	s := stripToDial(raw)
	if s == "" {
		return ""
	}
	num, err := phonenumbers.Parse(s, region)
	if err != nil {
		return s
	}
	if !phonenumbers.IsValidNumber(num) {
		return s
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// DigitStrip is the fallback strategy used when enhanced parsing is
// disabled: digits and a leading plus only, no validation.
type DigitStrip struct{}

// NewDigitStrip returns the fallback normalizer.
func NewDigitStrip() *DigitStrip {
	return &DigitStrip{}
}

// Enhanced reports that only weak normalization is available.
func (n *DigitStrip) Enhanced() bool { return false }

// Clean strips the raw value to digits and a leading plus sign.
func (n *DigitStrip) Clean(raw, _ string) string {
	return stripToDial(raw)
}

func stripToDial(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
