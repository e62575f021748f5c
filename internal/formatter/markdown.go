package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatDocument(doc *report.Document) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %d - %s\n\n", doc.FacilityNumber, escapeMarkdownCell(doc.ClinicName))

	for _, section := range doc.Sections {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		b.WriteString("| Field | Value |\n")
		b.WriteString("|-------|-------|\n")
		for _, field := range section.Fields {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeMarkdownCell(field.Label), escapeMarkdownCell(field.Value))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatOptions(title string, options []roster.Option) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", title)
	if len(options) == 0 {
		b.WriteString("_None_\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| Name | Role | Representative |\n")
	b.WriteString("|------|------|----------------|\n")
	for _, o := range options {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeMarkdownCell(o.Label), o.Level.Role(), escapeMarkdownCell(o.Representative))
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatClinics(clinics []*roster.Record) ([]byte, error) {
	var b strings.Builder

	b.WriteString("## Clinics\n\n")
	if len(clinics) == 0 {
		b.WriteString("_None_\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| " + strings.Join(clinicColumns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("------|", len(clinicColumns)) + "\n")
	for _, rec := range clinics {
		row := clinicRow(rec)
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return []byte(b.String()), nil
}

// escapeMarkdownCell keeps a value on one table row
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
