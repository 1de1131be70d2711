package dataset

import (
	"fmt"
	"math"

	"diamonddash/internal/errors"
)

// ColumnType is the inferred storage type of a column
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
)

// Column is one named, typed column of a Table
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`

	cells  []string
	values []float64 // NaN for missing cells; nil for categorical columns
}

// NewCategoricalColumn builds a categorical column from raw cells.
func NewCategoricalColumn(name string, cells []string) Column {
	return Column{Name: name, Type: TypeCategorical, cells: cells}
}

// NewNumericColumn builds a numeric column. values must be parallel to
// cells, with NaN marking missing cells.
func NewNumericColumn(name string, cells []string, values []float64) Column {
	return Column{Name: name, Type: TypeNumeric, cells: cells, values: values}
}

// IsNumeric reports whether the column holds numbers
func (c Column) IsNumeric() bool {
	return c.Type == TypeNumeric
}

// Len returns the number of cells in the column
func (c Column) Len() int {
	return len(c.cells)
}

// Table is an immutable in-memory dataset. It is built once and only read
// afterwards, so concurrent readers need no synchronisation.
type Table struct {
	source  string
	columns []Column
	index   map[string]int
	rows    int
}

// NewTable validates and assembles a table. Every column must have the same
// length and a unique, non-empty name.
func NewTable(source string, columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.DataInvalid("dataset has no columns")
	}

	rows := columns[0].Len()
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, errors.DataInvalid(fmt.Sprintf("column %d has an empty name", i+1))
		}
		if _, dup := index[col.Name]; dup {
			return nil, errors.DataInvalid(fmt.Sprintf("duplicate column name %q", col.Name))
		}
		if col.Len() != rows {
			return nil, errors.DataInvalid(fmt.Sprintf("column %q has %d cells, expected %d", col.Name, col.Len(), rows))
		}
		if col.IsNumeric() && len(col.values) != rows {
			return nil, errors.DataInvalid(fmt.Sprintf("numeric column %q has %d values, expected %d", col.Name, len(col.values), rows))
		}
		index[col.Name] = i
	}

	return &Table{
		source:  source,
		columns: columns,
		index:   index,
		rows:    rows,
	}, nil
}

// Source returns where the table was loaded from
func (t *Table) Source() string {
	return t.source
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return t.rows
}

// Columns returns the column descriptors in file order. The returned
// slice is a copy.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns all column names in file order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// NumericColumnNames returns the names of numeric columns in file order
func (t *Table) NumericColumnNames() []string {
	var names []string
	for _, col := range t.columns {
		if col.IsNumeric() {
			names = append(names, col.Name)
		}
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// HasNumericColumn reports whether name is a numeric column of the table
func (t *Table) HasNumericColumn(name string) bool {
	col, ok := t.Column(name)
	return ok && col.IsNumeric()
}

// Head returns the first min(n, RowCount) rows as raw cells, one entry per
// column in file order.
func (t *Table) Head(n int) [][]string {
	if n > t.rows {
		n = t.rows
	}
	if n < 0 {
		n = 0
	}

	out := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(t.columns))
		for c, col := range t.columns {
			row[c] = col.cells[r]
		}
		out[r] = row
	}
	return out
}

// NumericValues returns the non-missing values of a numeric column
func (t *Table) NumericValues(name string) ([]float64, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("column %q", name))
	}
	if !col.IsNumeric() {
		return nil, errors.InvalidInput(fmt.Sprintf("column %q is not numeric", name))
	}

	out := make([]float64, 0, len(col.values))
	for _, v := range col.values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
