package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yildizm/ClinicInfo/internal/logger"
)

// ErrNoHeader reports a sheet without a header row
var ErrNoHeader = errors.New("sheet has no header row")

// LoadError reports a roster file that could not be turned into a Roster.
// It is fatal at startup.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("failed to load roster %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("failed to load roster %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the roster sheet of the workbook at path. The whole sheet is
// materialized in memory; there is no partial load.
func Load(path string, opts ...LoadOption) (*Roster, error) {
	s := newSettings(opts)
	start := time.Now()

	// #nosec G304 - the roster path is chosen by the user
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("failed to close workbook %s: %v", path, cerr)
		}
	}()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: s.sheet, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Sheet: s.sheet, Err: ErrNoHeader}
	}

	// formatted text of a number cell can carry grouping ("1,042")
	raw, err := f.GetRows(s.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: s.sheet, Err: err}
	}
	useRawFacility(rows, raw)

	r, err := build(path, rows[0], rows[1:], s)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: s.sheet, Err: err}
	}

	s.logger.InfoWithFields("roster loaded", []logger.Field{
		logger.Path(path),
		logger.F("sheet", s.sheet),
		logger.Count(r.Len()),
		logger.Duration(time.Since(start)),
	})
	return r, nil
}

// useRawFacility replaces the formatted Fac# cells of rows with their raw
// values. Every other column keeps the text the sheet displays.
func useRawFacility(rows, raw [][]string) {
	pos := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == ColumnFacility {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}

	for i := 1; i < len(rows) && i < len(raw); i++ {
		if pos < len(rows[i]) && pos < len(raw[i]) {
			rows[i][pos] = raw[i][pos]
		}
	}
}
