package report

import (
	"fmt"
	"strings"

	"gridsift/domain/roster"
	"gridsift/domain/run"
)

// renderMarkdown builds the human-readable digest written next to the
// structured summary.
func renderMarkdown(s run.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Extraction run %s\n\n", s.Timestamp)
	fmt.Fprintf(&b, "- Input: `%s`\n", s.Input)
	fmt.Fprintf(&b, "- Output: `%s`\n", s.OutputDir)
	if s.GroupNumber != "" {
		fmt.Fprintf(&b, "- Group number: **%s**\n", s.GroupNumber)
	} else {
		b.WriteString("- Group number: not detected\n")
	}
	fmt.Fprintf(&b, "- Header row index: %d\n", s.HeaderRowIndex)
	fmt.Fprintf(&b, "- E.164 phone parsing: %v\n\n", s.PhoneE164)

	fmt.Fprintf(&b, "## Rows\n\n")
	fmt.Fprintf(&b, "| total | accepted | rejected |\n|---|---|---|\n| %d | %d | %d |\n\n",
		s.RowsTotal, s.RowsAccepted, s.RowsRejected)

	b.WriteString("## Column mapping\n\n| field | column |\n|---|---|\n")
	for _, field := range roster.AllFields {
		if col, ok := s.ColumnMapping[field]; ok {
			fmt.Fprintf(&b, "| %s | %d |\n", field, col)
		} else {
			fmt.Fprintf(&b, "| %s | (unmapped) |\n", field)
		}
	}

	if s.FillProfile != nil {
		b.WriteString("\n## Column fill profile\n\n| field | fill rate |\n|---|---|\n")
		for _, field := range roster.AllFields {
			fmt.Fprintf(&b, "| %s | %.2f |\n", field, s.FillProfile.PerField[field])
		}
		fmt.Fprintf(&b, "\nmean %.2f, min %.2f, max %.2f\n",
			s.FillProfile.Mean, s.FillProfile.Min, s.FillProfile.Max)
	}

	return b.String()
}
