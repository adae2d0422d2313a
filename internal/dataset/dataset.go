// Package dataset maintains the CSV table of monthly index closings.
//
// The file is only ever appended to: existing bytes are written back
// untouched and new rows follow them, so a dataset produced by any other
// tool keeps its formatting.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"SP500Keeper/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultPath is where the dataset lives relative to the working directory.
const DefaultPath = "public/data/sp500_data.csv"

// Column names of the dataset header.
const (
	MonthColumn   = "Month"
	ClosingColumn = "Closing"
)

// ErrEmpty is returned when the dataset file has no header row.
var ErrEmpty = errors.New("dataset is empty")

// Row is one dataset entry as stored in the file.
type Row struct {
	Month   string
	Closing string
}

// Dataset is an in-memory view of the CSV file plus any rows staged for append.
type Dataset struct {
	header  []string
	records [][]string
	raw     []byte
	crlf    bool

	monthIdx   int
	closingIdx int
	pending    [][]string
}

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse builds a Dataset from the raw file content.
func Parse(raw []byte) (*Dataset, error) {
	content := bytes.TrimPrefix(raw, []byte("\ufeff"))
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrEmpty
	}

	ds := &Dataset{
		header:     all[0],
		records:    all[1:],
		raw:        raw,
		crlf:       bytes.Contains(raw, []byte("\r\n")),
		monthIdx:   -1,
		closingIdx: -1,
	}
	for i, name := range ds.header {
		switch strings.TrimSpace(name) {
		case MonthColumn:
			ds.monthIdx = i
		case ClosingColumn:
			ds.closingIdx = i
		}
	}
	if ds.monthIdx < 0 {
		return nil, fmt.Errorf("missing %q column in header %v", MonthColumn, ds.header)
	}
	if ds.closingIdx < 0 {
		return nil, fmt.Errorf("missing %q column in header %v", ClosingColumn, ds.header)
	}
	return ds, nil
}

// Header returns the column names in file order.
func (d *Dataset) Header() []string { return d.header }

// Len returns the number of rows, staged rows included.
func (d *Dataset) Len() int { return len(d.records) + len(d.pending) }

// Rows returns every row, staged rows included, in file order.
func (d *Dataset) Rows() []Row {
	rows := make([]Row, 0, d.Len())
	for _, rec := range d.all() {
		rows = append(rows, Row{Month: field(rec, d.monthIdx), Closing: field(rec, d.closingIdx)})
	}
	return rows
}

// Observations returns the rows that carry a valid date and closing value.
func (d *Dataset) Observations() []model.Observation {
	var obs []model.Observation
	for _, row := range d.Rows() {
		date, ok := ParseMonth(row.Month)
		if !ok {
			continue
		}
		closing, err := decimal.NewFromString(strings.TrimSpace(row.Closing))
		if err != nil || closing.IsZero() {
			continue
		}
		obs = append(obs, model.Observation{Date: date, Closing: closing})
	}
	return obs
}

// Contains reports whether any row's Month field refers to month.
func (d *Dataset) Contains(month string) bool {
	for _, rec := range d.all() {
		if MatchMonth(field(rec, d.monthIdx), month) {
			return true
		}
	}
	return false
}

// Append stages obs as a new row laid out in header order.
func (d *Dataset) Append(obs model.Observation) {
	rec := make([]string, len(d.header))
	rec[d.monthIdx] = obs.Month()
	rec[d.closingIdx] = obs.ClosingString()
	d.pending = append(d.pending, rec)
}

// Dirty reports whether rows are staged and not yet saved.
func (d *Dataset) Dirty() bool { return len(d.pending) > 0 }

// Bytes returns the file content including staged rows.
func (d *Dataset) Bytes() ([]byte, error) {
	if len(d.pending) == 0 {
		return d.raw, nil
	}
	var buf bytes.Buffer
	buf.Write(d.raw)
	if len(d.raw) > 0 && d.raw[len(d.raw)-1] != '\n' {
		if d.crlf {
			buf.WriteString("\r\n")
		} else {
			buf.WriteByte('\n')
		}
	}
	w := csv.NewWriter(&buf)
	w.UseCRLF = d.crlf
	if err := w.WriteAll(d.pending); err != nil {
		return nil, fmt.Errorf("encode rows: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the dataset to path atomically and clears the staged rows.
func (d *Dataset) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	d.records = append(d.records, d.pending...)
	d.raw = data
	d.pending = nil
	return nil
}

func (d *Dataset) all() [][]string {
	if len(d.pending) == 0 {
		return d.records
	}
	all := make([][]string, 0, d.Len())
	all = append(all, d.records...)
	return append(all, d.pending...)
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
