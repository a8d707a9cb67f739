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

package field

import (
	"github.com/ajroetker/fwrite/internal/format"
	"github.com/ajroetker/fwrite/table"
)

// RowEncoder dispatches each cell of a row to the formatter matching its
// column kind, writing FieldSep between fields and RowSep after the last
// one.
type RowEncoder struct {
	Opts *table.WriteOptions

	// factorPlans caches each Factor column's per-dictionary-entry
	// rendering, indexed in parallel with the table's columns. Populated
	// once by Prepare.
	factorPlans [][]fieldPlan
}

// fieldPlan is a dictionary entry's quoting decision and rendered bytes,
// computed once per distinct factor level instead of once per cell.
type fieldPlan struct {
	rendered []byte
}

// Prepare precomputes the fieldPlan cache for every Factor column of t.
// It must run once, single-threaded, before any concurrent AppendRow or
// AppendRowFast call — the cache is read-only from that point on, so
// concurrent readers need no further synchronization.
func (e *RowEncoder) Prepare(t *table.Table) {
	plans := make([][]fieldPlan, len(t.Columns))
	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Kind != table.Factor {
			continue
		}
		levels := make([]fieldPlan, len(col.Dictionary))
		for d, s := range col.Dictionary {
			levels[d] = fieldPlan{rendered: AppendString(nil, s, false, e.Opts)}
		}
		plans[i] = levels
	}
	e.factorPlans = plans
}

// AppendRow appends row i of t to dst: the optional row-index field, each
// column's cell in order, and the row terminator. The trailing field
// separator that would follow the last cell is never written — RowSep is
// appended in its place directly, matching the "overwrite the trailing
// field_sep with row_sep" framing of the single-pass design.
func (e *RowEncoder) AppendRow(dst []byte, t *table.Table, row int) []byte {
	opts := e.Opts

	if opts.EmitRowIndex {
		dst = e.appendRowIndex(dst, t, row)
		dst = append(dst, opts.FieldSep)
	}

	ncol := len(t.Columns)
	for j := range ncol {
		dst = e.appendCell(dst, &t.Columns[j], j, row)
		if j < ncol-1 {
			dst = append(dst, opts.FieldSep)
		}
	}
	return append(dst, opts.RowSep...)
}

// AppendHeader appends the column-name row: a trivial wrapper over the
// string field encoder, reusing the same quoting rules as any other
// string field. When EmitRowIndex is set, the header's row-index cell is
// an empty quoted pair, the common CSV convention for "this column has no
// name"; under QuoteNever it is left empty and unquoted.
func (e *RowEncoder) AppendHeader(dst []byte, t *table.Table) []byte {
	opts := e.Opts
	if opts.EmitRowIndex {
		if opts.QuoteMode != table.QuoteNever {
			dst = appendQuoted(dst, nil, opts.QuoteMethod)
		}
		dst = append(dst, opts.FieldSep)
	}
	ncol := len(t.Columns)
	for j := range ncol {
		dst = AppendString(dst, []byte(t.Columns[j].Name), false, opts)
		if j < ncol-1 {
			dst = append(dst, opts.FieldSep)
		}
	}
	return append(dst, opts.RowSep...)
}

func (e *RowEncoder) appendRowIndex(dst []byte, t *table.Table, row int) []byte {
	if t.RowNames != nil {
		return AppendString(dst, []byte(t.RowNames[row]), false, e.Opts)
	}
	if e.Opts.QuoteMode != table.QuoteNever {
		dst = append(dst, '"')
		dst = format.AppendInt(dst, int64(row+1))
		dst = append(dst, '"')
		return dst
	}
	return format.AppendInt(dst, int64(row+1))
}

func (e *RowEncoder) appendCell(dst []byte, col *table.Column, colIndex, row int) []byte {
	opts := e.Opts
	switch col.Kind {
	case table.Bool:
		if col.BoolIsNA(row) {
			return append(dst, opts.NAToken...)
		}
		return appendBool(dst, col.Bools[row], opts.BoolAsInt)

	case table.Int32:
		v := col.Int32s[row]
		if v == table.NAInt32 {
			return append(dst, opts.NAToken...)
		}
		return format.AppendInt32(dst, v)

	case table.Int64:
		v := col.Int64s[row]
		if v == table.NAInt64 {
			return append(dst, opts.NAToken...)
		}
		return format.AppendInt(dst, v)

	case table.Float64:
		return format.AppendFloat(dst, col.Float64s[row], opts.DecimalSep, opts.NAToken, opts.Turbo)

	case table.String:
		return AppendString(dst, col.Strings[row], col.StringIsNA(row), opts)

	case table.Factor:
		if col.FactorIsNA(row) {
			return append(dst, opts.NAToken...)
		}
		if colIndex < len(e.factorPlans) && e.factorPlans[colIndex] != nil {
			return append(dst, e.factorPlans[colIndex][col.FactorCodes[row]-1].rendered...)
		}
		return AppendString(dst, col.Dictionary[col.FactorCodes[row]-1], false, opts)

	default:
		return dst
	}
}

func appendBool(dst []byte, v bool, asInt bool) []byte {
	if asInt {
		if v {
			return append(dst, '1')
		}
		return append(dst, '0')
	}
	if v {
		return append(dst, 'T', 'R', 'U', 'E')
	}
	return append(dst, 'F', 'A', 'L', 'S', 'E')
}
