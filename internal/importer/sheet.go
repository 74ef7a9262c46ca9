package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// ErrMissingColumns is returned when the header lacks a required column.
var ErrMissingColumns = errors.New("missing required columns")

// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Sheet is a parsed spreadsheet: a normalized header and its data rows.
type Sheet struct {
	Header []string
	Rows   []Row
}

// Row is one data row keyed by normalized column name.
type Row struct {
	// Line is the 1-based line of the row in the source file; the header is line 1.
	Line  int
	cells map[string]string
}

// NewRow builds a row from column/value pairs. Column names are normalized.
func NewRow(line int, cells map[string]string) Row {
	r := Row{Line: line, cells: make(map[string]string, len(cells))}
	for k, v := range cells {
		r.cells[domain.NormalizeKey(k)] = v
	}
	return r
}

// Read parses r as a spreadsheet. The format is picked from the extension of name.
func Read(r io.Reader, name string) (*Sheet, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		records, err = readXLSX(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: no header row", name)
	}
	return newSheet(records), nil
}

// readXLSX returns the cells of the first worksheet.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

func newSheet(records [][]string) *Sheet {
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = domain.NormalizeKey(h)
	}

	s := &Sheet{Header: header}
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		row := Row{Line: i + 2, cells: make(map[string]string, len(header))}
		for j, col := range header {
			if col == "" {
				continue
			}
			if j < len(rec) {
				row.cells[col] = rec[j]
			} else {
				row.cells[col] = ""
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// HasColumn reports whether the header contains col.
func (s *Sheet) HasColumn(col string) bool {
	return slices.Contains(s.Header, col)
}

// RequireColumns checks that every column in cols is present in the header.
func (s *Sheet) RequireColumns(cols []string) error {
	var missing []string
	for _, c := range cols {
		if !s.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// Has reports whether the row's sheet has the column.
func (r Row) Has(col string) bool {
	_, ok := r.cells[col]
	return ok
}

// Get returns the cleaned cell value, or "" when blank or absent.
func (r Row) Get(col string) string {
	return domain.CleanText(r.cells[col])
}

// Blank reports whether the cell is empty or absent.
func (r Row) Blank(col string) bool {
	return r.Get(col) == ""
}

// Text returns the cell value of a required column.
func (r Row) Text(col string) (string, error) {
	v := r.Get(col)
	if v == "" {
		return "", fmt.Errorf("missing value in column %q", col)
	}
	return v, nil
}

// OptText returns nil for a blank cell.
func (r Row) OptText(col string) *string {
	return domain.OptString(r.cells[col])
}

// ID parses a required id cell.
func (r Row) ID(col string) (int64, error) {
	v := r.Get(col)
	if v == "" {
		return 0, fmt.Errorf("missing value in column %q", col)
	}
	id, err := ParseID(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return id, nil
}

// OptID parses an optional id cell; a blank cell yields nil.
func (r Row) OptID(col string) (*int64, error) {
	if r.Blank(col) {
		return nil, nil
	}
	id, err := r.ID(col)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// OptInt parses an optional integer cell such as a price; a blank cell yields nil.
func (r Row) OptInt(col string) (*int64, error) {
	v := r.Get(col)
	if v == "" {
		return nil, nil
	}
	n, err := ParseInt(v)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", col, err)
	}
	return &n, nil
}

// IDs parses a comma-separated id list. ok is false when the cell is blank
// or the column is absent, meaning the member set must be left untouched.
func (r Row) IDs(col string) (ids []int64, ok bool, err error) {
	v := r.Get(col)
	if v == "" {
		return nil, false, nil
	}
	ids, err = ParseIDList(v)
	if err != nil {
		return nil, false, fmt.Errorf("column %q: %w", col, err)
	}
	return ids, true, nil
}
