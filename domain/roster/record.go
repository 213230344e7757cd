package roster

// Record is one row of the working table: the canonical fields plus
// the group number replicated from the sheet's top block. Absent
// values are empty strings.
type Record struct {
	PersonCode  string `json:"person_code"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	GroupNumber string `json:"group_number"`
}

// ColumnMapping maps a canonical field to its zero-based column index
// in the located header row. Fields never matched are simply absent —
// no sentinel entries.
type ColumnMapping map[Field]int

// Rejected wraps a record that failed the completeness rule with the
// reason it was routed to the rejected set.
type Rejected struct {
	Record
	Reason string `json:"reason"`
}
