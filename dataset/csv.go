// Package dataset loads small descriptor tables from CSV and turns named
// columns into the gonum matrices the regression core consumes.
//
// This is deliberately not a dataframe: a Table only knows its header, its
// string cells, and how to materialize numeric columns. Anything fancier
// (joins, missing-value handling, categorical encoding) is out of scope and
// should happen before the file reaches this package.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

// Table is an immutable named-column view over a parsed CSV file.
// Cells stay as strings until a column is materialized, so identifier
// columns (compound names, SMILES strings) can ride along untouched.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]string // row-major, len(columns) cells per row
}

// Load parses CSV data from r. The first record is taken as the header and
// every following record must have the same number of fields.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewModelError("dataset.Load", "empty input", errors.ErrEmptyData)
	}
	if err != nil {
		return nil, errors.Wrap(err, "dataset.Load: reading header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; dup {
			return nil, errors.Newf("dataset.Load: duplicate column %q", name)
		}
		index[name] = i
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.Load: reading rows")
	}
	if len(records) == 0 {
		return nil, errors.NewModelError("dataset.Load", "no data rows", errors.ErrEmptyData)
	}

	return &Table{columns: header, index: index, cells: records}, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadFile: %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.cells)
}

// Select materializes the named columns, in the given order, as an n×k
// feature matrix. The column order is the caller's contract with the model:
// it must match between fit-time and predict-time selections.
func (t *Table) Select(cols ...string) (*mat.Dense, error) {
	if len(cols) == 0 {
		return nil, errors.NewValueError("Table.Select", "no columns requested")
	}

	indices := make([]int, len(cols))
	for i, name := range cols {
		idx, ok := t.index[name]
		if !ok {
			return nil, errors.Wrapf(errors.ErrColumnNotFound, "Table.Select: %q", name)
		}
		indices[i] = idx
	}

	X := mat.NewDense(len(t.cells), len(cols), nil)
	for i, row := range t.cells {
		for j, idx := range indices {
			v, err := parseCell(row[idx], i, cols[j])
			if err != nil {
				return nil, err
			}
			X.Set(i, j, v)
		}
	}
	return X, nil
}

// Column materializes a single named column as a target vector.
func (t *Table) Column(name string) (*mat.VecDense, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrColumnNotFound, "Table.Column: %q", name)
	}

	y := mat.NewVecDense(len(t.cells), nil)
	for i, row := range t.cells {
		v, err := parseCell(row[idx], i, name)
		if err != nil {
			return nil, err
		}
		y.SetVec(i, v)
	}
	return y, nil
}

func parseCell(cell string, row int, column string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.Newf("dataset: row %d column %q: %q is not numeric", row, column, cell)
	}
	return v, nil
}
