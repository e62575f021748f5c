package roster

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column names read from the roster sheet
const (
	ColumnFacility = "Fac#"
	ColumnName     = "Clinic Name"
	ColumnGroup    = "GRP"
	ColumnRegion   = "REG"
	ColumnArea     = "Area"
	ColumnGVP      = "GVP Name"
	ColumnRVP      = "RVP"
	ColumnDO       = "In-Center DO"
	ColumnManager  = "Clinic Manager"
)

// RequiredColumns must be present in the header row for a load to succeed
var RequiredColumns = []string{
	ColumnFacility,
	ColumnName,
	ColumnGroup,
	ColumnRegion,
	ColumnArea,
}

// All is the filter value that matches every row at a level
const All = ""

// Level identifies one of the organizational groupings above a clinic
type Level int

const (
	LevelGroup Level = iota
	LevelRegion
	LevelArea
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case LevelGroup:
		return "group"
	case LevelRegion:
		return "region"
	case LevelArea:
		return "area"
	default:
		return "unknown"
	}
}

// Column returns the sheet column the level's key is read from
func (l Level) Column() string {
	switch l {
	case LevelGroup:
		return ColumnGroup
	case LevelRegion:
		return ColumnRegion
	default:
		return ColumnArea
	}
}

// RepresentativeColumn returns the column holding the level's named role
func (l Level) RepresentativeColumn() string {
	switch l {
	case LevelGroup:
		return ColumnGVP
	case LevelRegion:
		return ColumnRVP
	default:
		return ColumnDO
	}
}

// Role returns the short title of the level's representative
func (l Level) Role() string {
	switch l {
	case LevelGroup:
		return "GVP"
	case LevelRegion:
		return "RVP"
	default:
		return "DO"
	}
}

// AllLabel returns the caption of the level's catch-all entry
func (l Level) AllLabel() string {
	switch l {
	case LevelGroup:
		return "All Groups"
	case LevelRegion:
		return "All Regions"
	default:
		return "All Areas"
	}
}

// Option is one distinct Group, Region or Area key together with its
// representative, as offered in a navigation list.
type Option struct {
	Level          Level  `json:"-"`
	Key            string `json:"key"`
	Label          string `json:"label"`
	Representative string `json:"representative"`
}

// Display renders the option the way list panes show it
func (o Option) Display() string {
	return fmt.Sprintf("%s (%s: %s)", o.Label, o.Level.Role(), o.Representative)
}

// Record is one roster row. Values are the raw cell text keyed by the
// trimmed header name; absent cells read as "".
type Record struct {
	fields map[string]string
	number int
	row    int
}

// NewRecord builds a record from column/value pairs. row is the 1-based
// sheet row the values came from (0 when unknown).
func NewRecord(fields map[string]string, row int) *Record {
	values := make(map[string]string, len(fields))
	for k, v := range fields {
		values[strings.TrimSpace(k)] = v
	}
	number, _ := ParseFacilityNumber(values[ColumnFacility])
	return &Record{fields: values, number: number, row: row}
}

// Get returns the value of column, or "" when absent
func (r *Record) Get(column string) string {
	return strings.TrimSpace(r.fields[column])
}

// FacilityNumber returns the clinic identifier, 0 when the row has none
func (r *Record) FacilityNumber() int {
	return r.number
}

// Selectable reports whether the row carries a usable facility number
func (r *Record) Selectable() bool {
	return r.number > 0
}

// Row returns the sheet row the record was read from
func (r *Record) Row() int {
	return r.row
}

// Name returns the clinic name
func (r *Record) Name() string {
	return r.Get(ColumnName)
}

// Manager returns the clinic manager, "" when blank
func (r *Record) Manager() string {
	return r.Get(ColumnManager)
}

// Key returns the normalized key of the record at level
func (r *Record) Key(level Level) string {
	return Normalize(r.fields[level.Column()])
}

// Label renders the record the way the clinic list shows it
func (r *Record) Label() string {
	return fmt.Sprintf("%d - %s (CM: %s)", r.number, r.Name(), r.Manager())
}

// Normalize lower-cases and trims a grouping value into its key
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Title renders a key for display
func Title(key string) string {
	return cases.Title(language.English).String(key)
}

// ParseNumber parses an integer. Spreadsheet cells sometimes carry a float
// rendering ("1234.0"), which is accepted when the fraction is zero.
func ParseNumber(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// ParseFacilityNumber parses a facility number that makes a row
// selectable. Only positive numbers qualify.
func ParseFacilityNumber(value string) (int, bool) {
	n, ok := ParseNumber(value)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// ClinicOrder selects how clinic lists are sorted
type ClinicOrder int

const (
	// OrderNumeric sorts by facility number as an integer (2 before 10)
	OrderNumeric ClinicOrder = iota
	// OrderLexical sorts by the decimal text of the number (10 before 2)
	OrderLexical
)

// String returns the config name of the order
func (o ClinicOrder) String() string {
	if o == OrderLexical {
		return "lexical"
	}
	return "numeric"
}

// ParseClinicOrder parses a config name into a ClinicOrder
func ParseClinicOrder(name string) (ClinicOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return OrderNumeric, nil
	case "lexical":
		return OrderLexical, nil
	default:
		return OrderNumeric, fmt.Errorf("invalid clinic order: %s (must be one of: numeric, lexical)", name)
	}
}
