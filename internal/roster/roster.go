package roster

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yildizm/ClinicInfo/internal/logger"
)

// DefaultSheet is the workbook sheet the roster is read from
const DefaultSheet = "Fac List"

// ErrMissingColumn reports a header row without one of RequiredColumns
var ErrMissingColumn = errors.New("missing required column")

// Roster is the read-only clinic table plus its derived queries. It is
// never modified after construction.
type Roster struct {
	path     string
	columns  []string
	records  []*Record
	byNumber map[int]*Record
	order    ClinicOrder
}

// LoadOption configures Load and New
type LoadOption func(*settings)

type settings struct {
	sheet  string
	order  ClinicOrder
	logger *logger.Logger
}

func newSettings(opts []LoadOption) *settings {
	s := &settings{sheet: DefaultSheet, order: OrderNumeric}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSheet reads the roster from a sheet other than DefaultSheet
func WithSheet(name string) LoadOption {
	return func(s *settings) {
		if name != "" {
			s.sheet = name
		}
	}
}

// WithClinicOrder sets the sort order of clinic lists
func WithClinicOrder(order ClinicOrder) LoadOption {
	return func(s *settings) {
		s.order = order
	}
}

// WithLogger reports load diagnostics (duplicate numbers, skipped rows)
func WithLogger(l *logger.Logger) LoadOption {
	return func(s *settings) {
		s.logger = l
	}
}

// New builds a roster from a header row and data rows. Rows shorter than
// the header read the missing cells as "".
func New(header []string, rows [][]string, opts ...LoadOption) (*Roster, error) {
	s := newSettings(opts)
	return build("", header, rows, s)
}

func build(path string, header []string, rows [][]string, s *settings) (*Roster, error) {
	columns, index := indexHeader(header)

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	r := &Roster{
		path:     path,
		columns:  columns,
		records:  make([]*Record, 0, len(rows)),
		byNumber: make(map[int]*Record, len(rows)),
		order:    s.order,
	}

	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		fields := make(map[string]string, len(columns))
		for col, pos := range index {
			if pos < len(row) {
				fields[col] = row[pos]
			}
		}
		// header is sheet row 1
		rec := NewRecord(fields, i+2)
		r.records = append(r.records, rec)

		if !rec.Selectable() {
			s.logger.DebugWithFields("row has no usable facility number", []logger.Field{
				logger.F("row", rec.Row()),
				logger.F("value", rec.Get(ColumnFacility)),
			})
			continue
		}
		if first, dup := r.byNumber[rec.FacilityNumber()]; dup {
			s.logger.WarnWithFields("duplicate facility number, keeping first row", []logger.Field{
				logger.Facility(rec.FacilityNumber()),
				logger.F("first_row", first.Row()),
				logger.F("row", rec.Row()),
			})
			continue
		}
		r.byNumber[rec.FacilityNumber()] = rec
	}

	s.logger.InfoWithFields("roster built", []logger.Field{
		logger.Count(len(r.records)),
		logger.F("clinics", len(r.byNumber)),
		logger.F("order", r.order),
	})

	return r, nil
}

// indexHeader maps trimmed header names to their column position. Blank
// headers are skipped and a repeated name keeps its first position.
func indexHeader(header []string) ([]string, map[string]int) {
	columns := make([]string, 0, len(header))
	index := make(map[string]int, len(header))
	for pos, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := index[name]; seen {
			continue
		}
		index[name] = pos
		columns = append(columns, name)
	}
	return columns, index
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Path returns the file the roster was loaded from ("" for New)
func (r *Roster) Path() string {
	return r.path
}

// Columns returns the header names in sheet order
func (r *Roster) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of data rows, including rows that are not
// selectable clinics
func (r *Roster) Len() int {
	return len(r.records)
}

// ClinicCount returns the number of distinct selectable clinics
func (r *Roster) ClinicCount() int {
	return len(r.byNumber)
}

// Order returns the configured clinic sort order
func (r *Roster) Order() ClinicOrder {
	return r.order
}

// Records returns every row in table order
func (r *Roster) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// Find returns the clinic with facility number n
func (r *Roster) Find(n int) (*Record, bool) {
	rec, ok := r.byNumber[n]
	return rec, ok
}

// Groups returns the distinct Group keys with their GVP
func (r *Roster) Groups() []Option {
	return r.options(LevelGroup, func(*Record) bool { return true })
}

// Regions returns the distinct Region keys among rows in group, with their RVP
func (r *Roster) Regions(group string) []Option {
	group = Normalize(group)
	return r.options(LevelRegion, func(rec *Record) bool {
		return matches(group, rec.Key(LevelGroup))
	})
}

// Areas returns the distinct Area keys among rows in group and region,
// with their DO
func (r *Roster) Areas(group, region string) []Option {
	group, region = Normalize(group), Normalize(region)
	return r.options(LevelArea, func(rec *Record) bool {
		return matches(group, rec.Key(LevelGroup)) &&
			matches(region, rec.Key(LevelRegion))
	})
}

// Clinics returns the selectable clinics matching every non-All filter,
// sorted by the roster's ClinicOrder
func (r *Roster) Clinics(group, region, area string) []*Record {
	group, region, area = Normalize(group), Normalize(region), Normalize(area)

	var out []*Record
	for _, rec := range r.records {
		if !rec.Selectable() || r.byNumber[rec.FacilityNumber()] != rec {
			continue
		}
		if matches(group, rec.Key(LevelGroup)) &&
			matches(region, rec.Key(LevelRegion)) &&
			matches(area, rec.Key(LevelArea)) {
			out = append(out, rec)
		}
	}

	switch r.order {
	case OrderLexical:
		sort.SliceStable(out, func(i, j int) bool {
			return strconv.Itoa(out[i].FacilityNumber()) < strconv.Itoa(out[j].FacilityNumber())
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FacilityNumber() < out[j].FacilityNumber()
		})
	}
	return out
}

// options collects distinct non-empty keys at level among rows accepted by
// keep. The representative is taken from the first accepted row per key.
func (r *Roster) options(level Level, keep func(*Record) bool) []Option {
	reps := make(map[string]string)
	var keys []string
	for _, rec := range r.records {
		if !keep(rec) {
			continue
		}
		key := rec.Key(level)
		if key == "" {
			continue
		}
		if _, seen := reps[key]; seen {
			continue
		}
		reps[key] = rec.Get(level.RepresentativeColumn())
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Option, 0, len(keys))
	for _, key := range keys {
		out = append(out, Option{
			Level:          level,
			Key:            key,
			Label:          Title(key),
			Representative: reps[key],
		})
	}
	return out
}

func matches(filter, key string) bool {
	return filter == All || filter == key
}
