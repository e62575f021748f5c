package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// csvFormatter formats documents and lists as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) FormatDocument(doc *report.Document) ([]byte, error) {
	records := [][]string{{"Section", "Field", "Value"}}
	for _, section := range doc.Sections {
		for _, field := range section.Fields {
			records = append(records, []string{section.Title, field.Label, field.Value})
		}
	}
	return writeCSV(records)
}

func (f *csvFormatter) FormatOptions(_ string, options []roster.Option) ([]byte, error) {
	records := [][]string{{"Level", "Key", "Label", "Role", "Representative"}}
	for _, o := range options {
		records = append(records, []string{o.Level.String(), o.Key, o.Label, o.Level.Role(), o.Representative})
	}
	return writeCSV(records)
}

func (f *csvFormatter) FormatClinics(clinics []*roster.Record) ([]byte, error) {
	records := [][]string{clinicColumns}
	for _, rec := range clinics {
		records = append(records, clinicRow(rec))
	}
	return writeCSV(records)
}

func writeCSV(records [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
