package domain

import (
	"math"
	"strconv"
)

// valueKind discriminates the three cell states.
type valueKind uint8

const (
	valueMissing valueKind = iota
	valueNumber
	valueText
)

// Value is a single dataset cell: a number, a text string, or a missing
// marker. The zero Value is a missing marker.
type Value struct {
	kind valueKind
	num  float64
	str  string
}

// Number returns a numeric cell value. NaN has no valid numeric meaning in a
// dataset, so it is stored as a missing marker.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: valueNumber, num: f}
}

// Text returns a text cell value.
func Text(s string) Value {
	return Value{kind: valueText, str: s}
}

// Missing returns a missing marker.
func Missing() Value {
	return Value{}
}

// IsMissing reports whether the cell is a missing marker.
func (v Value) IsMissing() bool { return v.kind == valueMissing }

// IsNumber reports whether the cell holds a numeric value.
func (v Value) IsNumber() bool { return v.kind == valueNumber }

// IsText reports whether the cell holds a text value.
func (v Value) IsText() bool { return v.kind == valueText }

// Float returns the numeric value. It is only meaningful when IsNumber is true.
func (v Value) Float() float64 { return v.num }

// Str returns the text value. It is only meaningful when IsText is true.
func (v Value) Str() string { return v.str }

// Key returns a canonical identity string for the cell. Two cells are the
// same observation exactly when their keys match; duplicate-row and
// distinct-value checks rely on this.
func (v Value) Key() string {
	switch v.kind {
	case valueNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case valueText:
		return "t:" + v.str
	default:
		return "m:"
	}
}

// String renders the cell for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case valueNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case valueText:
		return v.str
	default:
		return "<missing>"
	}
}
