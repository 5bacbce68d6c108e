package domain

import (
	"fmt"

	"github.com/spf13/cast"
)

// ColumnKind tags a column with the value family its cells belong to.
// The kind is determined once, when the column is built, and drives every
// per-kind cleaning policy afterwards.
type ColumnKind string

const (
	// KindNumeric marks a column whose non-missing cells are all numbers.
	KindNumeric ColumnKind = "numeric"

	// KindText marks a column holding free-form text.
	KindText ColumnKind = "text"

	// KindCategorical marks a text column narrowed to an enumerated set of
	// levels. Cell values are unchanged; the kind and level list carry the
	// categorical representation.
	KindCategorical ColumnKind = "categorical"
)

// Column is a named, kind-tagged sequence of cells.
type Column struct {
	Name   string     `json:"name"`
	Kind   ColumnKind `json:"kind"`
	Levels []string   `json:"levels,omitempty"`
	Values []Value    `json:"-"`
}

// NewColumn builds a column and infers its kind from the cell values:
// numeric when every non-missing cell is a number, text otherwise. A column
// with no non-missing cells is numeric, matching the convention that an
// empty observation set defaults to the numeric family.
func NewColumn(name string, values []Value) Column {
	kind := KindNumeric
	for _, v := range values {
		if v.IsText() {
			kind = KindText
			break
		}
	}
	return Column{Name: name, Kind: kind, Values: values}
}

// ColumnFromValues builds a column from loosely typed host values.
// Numbers of any Go numeric type become numeric cells, strings become text
// cells, and nil becomes a missing marker. Other types are coerced to a
// number first and to a string second; values that coerce to neither are
// rejected.
func ColumnFromValues(name string, raw []any) (Column, error) {
	values := make([]Value, len(raw))
	for i, r := range raw {
		v, err := coerceValue(r)
		if err != nil {
			return Column{}, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		values[i] = v
	}
	return NewColumn(name, values), nil
}

func coerceValue(raw any) (Value, error) {
	switch r := raw.(type) {
	case nil:
		return Missing(), nil
	case Value:
		return r, nil
	case string:
		return Text(r), nil
	}
	if f, err := cast.ToFloat64E(raw); err == nil {
		return Number(f), nil
	}
	if s, err := cast.ToStringE(raw); err == nil {
		return Text(s), nil
	}
	return Value{}, fmt.Errorf("unsupported cell value %v (%T)", raw, raw)
}

// MissingCount returns the number of missing markers in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// DistinctCount returns the number of distinct non-missing values.
// Missing markers never count as a value of their own.
func (c *Column) DistinctCount() int {
	seen := make(map[string]struct{})
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		seen[v.Key()] = struct{}{}
	}
	return len(seen)
}

// Copy returns a deep copy of the column.
func (c *Column) Copy() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Levels != nil {
		out.Levels = append([]string(nil), c.Levels...)
	}
	out.Values = append([]Value(nil), c.Values...)
	return out
}

// Dataset is an ordered collection of equally sized columns.
type Dataset struct {
	Columns []Column `json:"columns"`
}

// NewDataset builds a dataset from columns, rejecting ragged input.
func NewDataset(cols ...Column) (*Dataset, error) {
	if len(cols) > 0 {
		rows := len(cols[0].Values)
		for _, c := range cols[1:] {
			if len(c.Values) != rows {
				return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, len(c.Values), rows)
			}
		}
	}
	return &Dataset{Columns: cols}, nil
}

// FromRows builds a dataset from a header list and row-major loose values,
// the shape most host applications already hold after parsing. Every row
// must have one value per header.
func FromRows(headers []string, rows [][]any) (*Dataset, error) {
	raw := make([][]any, len(headers))
	for i := range raw {
		raw[i] = make([]any, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d values, want %d", r, len(row), len(headers))
		}
		for c, cell := range row {
			raw[c][r] = cell
		}
	}

	cols := make([]Column, len(headers))
	for i, h := range headers {
		col, err := ColumnFromValues(h, raw[i])
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return NewDataset(cols...)
}

// Rows returns the row count.
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Column returns the first column with the given name, or nil.
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// Row returns the cells of row i in column order.
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.Columns))
	for c := range d.Columns {
		row[c] = d.Columns[c].Values[i]
	}
	return row
}

// RowKey returns a canonical identity string for row i across all columns.
// Two rows with equal keys are duplicates of each other.
func (d *Dataset) RowKey(i int) string {
	key := ""
	for c := range d.Columns {
		key += d.Columns[c].Values[i].Key() + "\x1f"
	}
	return key
}

// Copy returns a deep copy of the dataset. Cleaning always runs on a copy so
// the caller's dataset is never mutated.
func (d *Dataset) Copy() *Dataset {
	cols := make([]Column, len(d.Columns))
	for i := range d.Columns {
		cols[i] = d.Columns[i].Copy()
	}
	return &Dataset{Columns: cols}
}
