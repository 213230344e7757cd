package roster

import "strings"

// ReasonMissingPhoneAndName is attached to rows rejected by the
// completeness rule.
const ReasonMissingPhoneAndName = "missing phone and name"

// Partition splits the working table into accepted and rejected sets.
//
// Rows where all four canonical fields are empty after trimming are
// blank spacer rows, not data: they are dropped outright and appear in
// neither set. Of the remaining rows, a record is accepted when it
// carries a non-empty phone or a non-empty name — a record is only
// actionable with at least a contact channel or an identity string.
// Email or person code alone do not qualify. Relative order is
// preserved within each set, and every surviving row lands in exactly
// one of them.
func Partition(records []Record) (accepted []Record, rejected []Rejected) {
	accepted = make([]Record, 0, len(records))
	rejected = make([]Rejected, 0)
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if rec.Phone != "" || rec.FullName != "" {
			accepted = append(accepted, rec)
			continue
		}
		rejected = append(rejected, Rejected{Record: rec, Reason: ReasonMissingPhoneAndName})
	}
	return accepted, rejected
}

func isBlank(rec Record) bool {
	return strings.TrimSpace(rec.PersonCode) == "" &&
		strings.TrimSpace(rec.FullName) == "" &&
		strings.TrimSpace(rec.Email) == "" &&
		strings.TrimSpace(rec.Phone) == ""
}
