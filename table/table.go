// Copyright 2025 fwrite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table is the in-memory data model fwrite serializes: a
// rectangular sequence of equal-length typed columns plus the options that
// control how they are rendered.
package table

import (
	"fmt"
	"math"
)

// Kind identifies the semantic type carried by a Column.
type Kind int

const (
	Bool Kind = iota
	Int32
	Int64
	Float64
	String
	Factor
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case String:
		return "string"
	case Factor:
		return "factor"
	default:
		return "unknown"
	}
}

// NA sentinels. Integers use min-int as the missing marker (the
// convention inherited from the original fwrite.c), floats use NaN,
// strings and bools use an explicit validity bitmap since no in-band byte
// pattern is safe to reserve.
const (
	NAInt32 = math.MinInt32
	NAInt64 = math.MinInt64
)

// Column is a tagged variant over the six supported column kinds. Exactly
// one of the slices matching Kind is populated; the others are nil. All
// columns within one Table share the same length.
type Column struct {
	Name string
	Kind Kind

	Bools []bool
	// BoolValid, if non-nil, marks which Bools entries are present; a nil
	// BoolValid means no bool in this column is ever NA.
	BoolValid []bool

	Int32s []int32 // NAInt32 marks a missing value
	Int64s []int64 // NAInt64 marks a missing value

	Float64s []float64 // NaN marks a missing value

	// Strings holds raw bytes per row; StringValid, if non-nil, marks which
	// entries are present. Only StringValid marks a missing value: a nil
	// Strings[i] is written as an empty string, so the validity bitmap
	// keeps empty-string and NA unambiguous.
	Strings      [][]byte
	StringValid []bool

	// Factor columns store small integer codes (1-based, 0 = NA) into a
	// dictionary shared across the whole column.
	FactorCodes []int32
	Dictionary  [][]byte
}

// Len returns the column's row count, independent of which Kind it is.
func (c *Column) Len() int {
	switch c.Kind {
	case Bool:
		return len(c.Bools)
	case Int32:
		return len(c.Int32s)
	case Int64:
		return len(c.Int64s)
	case Float64:
		return len(c.Float64s)
	case String:
		return len(c.Strings)
	case Factor:
		return len(c.FactorCodes)
	default:
		return 0
	}
}

// BoolIsNA reports whether row i of a Bool column is missing.
func (c *Column) BoolIsNA(i int) bool {
	return c.BoolValid != nil && !c.BoolValid[i]
}

// StringIsNA reports whether row i of a String column is missing.
func (c *Column) StringIsNA(i int) bool {
	return c.StringValid != nil && !c.StringValid[i]
}

// FactorIsNA reports whether row i of a Factor column is missing (code 0).
func (c *Column) FactorIsNA(i int) bool {
	return c.FactorCodes[i] == 0
}

// Table is an ordered sequence of columns of equal length, the unit
// WriteTable serializes.
type Table struct {
	Columns []Column
	Nrow    int

	// RowNames, if non-nil, supplies the per-row label used in place of
	// the synthetic 1-based index when WriteOptions.EmitRowIndex is set.
	// Must have length Nrow when present.
	RowNames []string
}

// Validate checks the table's structural invariant: every column's length
// equals Nrow, and RowNames (if present) matches it too.
func (t *Table) Validate() error {
	for i := range t.Columns {
		if n := t.Columns[i].Len(); n != t.Nrow {
			return &ColumnLengthError{Name: t.Columns[i].Name, Index: i, Got: n, Want: t.Nrow}
		}
	}
	if t.RowNames != nil && len(t.RowNames) != t.Nrow {
		return &ColumnLengthError{Name: "<row names>", Index: -1, Got: len(t.RowNames), Want: t.Nrow}
	}
	return nil
}

// ColumnLengthError reports a column whose length disagrees with the
// table's declared row count.
type ColumnLengthError struct {
	Name  string
	Index int
	Got   int
	Want  int
}

func (e *ColumnLengthError) Error() string {
	return fmt.Sprintf("table: column %s has length %d, want %d", e.Name, e.Got, e.Want)
}
