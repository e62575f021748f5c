package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	FormatDocument(doc *report.Document) ([]byte, error)
	FormatOptions(title string, options []roster.Option) ([]byte, error)
	FormatClinics(clinics []*roster.Record) ([]byte, error)
}

// Formats lists the accepted output format names
var Formats = []string{"text", "json", "markdown", "csv"}

// New returns the formatter registered under format. color only affects
// the text formatter.
func New(format string, color bool) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
}

// clinicColumns are the roster columns listed for each clinic in tabular
// outputs
var clinicColumns = []string{
	roster.ColumnFacility,
	roster.ColumnName,
	roster.ColumnManager,
	roster.ColumnGroup,
	roster.ColumnRegion,
	roster.ColumnArea,
}

func clinicRow(rec *roster.Record) []string {
	return []string{
		fmt.Sprintf("%d", rec.FacilityNumber()),
		rec.Name(),
		rec.Manager(),
		rec.Get(roster.ColumnGroup),
		rec.Get(roster.ColumnRegion),
		rec.Get(roster.ColumnArea),
	}
}
