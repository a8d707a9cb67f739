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
	"github.com/samber/lo"
)

// FastKind reports which turbo fast path (if any) applies uniformly to
// every column of a table, or (0, false) if the table is not eligible.
type FastKind int

const (
	fastNone FastKind = iota
	FastFloat64
	FastInt32
	FastInt64
)

// DetectFastKind reports the turbo eligibility of t: all data columns
// must share one numeric kind and no row-name column may be present,
// matching the data-layout precondition of the original fwrite.c's
// specialized loops.
func DetectFastKind(t *table.Table) (FastKind, bool) {
	if len(t.Columns) == 0 || t.RowNames != nil {
		return fastNone, false
	}
	first := t.Columns[0].Kind
	if first != table.Float64 && first != table.Int32 && first != table.Int64 {
		return fastNone, false
	}
	uniform := lo.EveryBy(t.Columns, func(c table.Column) bool {
		return c.Kind == first
	})
	if !uniform {
		return fastNone, false
	}
	switch first {
	case table.Float64:
		return FastFloat64, true
	case table.Int32:
		return FastInt32, true
	case table.Int64:
		return FastInt64, true
	default:
		return fastNone, false
	}
}

// AppendRowFast appends row `row` of a homogeneous table using the turbo
// path selected by kind, producing output byte-identical to
// RowEncoder.AppendRow on the same table but without the per-cell switch
// over column kind.
func (e *RowEncoder) AppendRowFast(dst []byte, t *table.Table, row int, kind FastKind) []byte {
	opts := e.Opts
	ncol := len(t.Columns)

	if opts.EmitRowIndex {
		dst = e.appendRowIndex(dst, t, row)
		dst = append(dst, opts.FieldSep)
	}

	switch kind {
	case FastFloat64:
		for j := range ncol {
			dst = format.AppendFloat(dst, t.Columns[j].Float64s[row], opts.DecimalSep, opts.NAToken, opts.Turbo)
			if j < ncol-1 {
				dst = append(dst, opts.FieldSep)
			}
		}
	case FastInt32:
		for j := range ncol {
			v := t.Columns[j].Int32s[row]
			if v == table.NAInt32 {
				dst = append(dst, opts.NAToken...)
			} else {
				dst = format.AppendInt32(dst, v)
			}
			if j < ncol-1 {
				dst = append(dst, opts.FieldSep)
			}
		}
	case FastInt64:
		for j := range ncol {
			v := t.Columns[j].Int64s[row]
			if v == table.NAInt64 {
				dst = append(dst, opts.NAToken...)
			} else {
				dst = format.AppendInt(dst, v)
			}
			if j < ncol-1 {
				dst = append(dst, opts.FieldSep)
			}
		}
	}
	return append(dst, opts.RowSep...)
}
