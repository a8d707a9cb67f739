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

// Package estimate implements the one-pass sampled line-size estimator
// that feeds batch sizing, and the column-type pre-scan that rejects an
// unsupported table before any worker is spawned.
package estimate

import (
	"fmt"

	"github.com/ajroetker/fwrite/internal/field"
	"github.com/ajroetker/fwrite/internal/format"
	"github.com/ajroetker/fwrite/table"
)

const (
	maxSampleRanges = 10
	maxSampleRows   = 100
)

// UnsupportedColumnError reports a column whose Kind the writer does not
// recognize. It is raised during the pre-scan, before any bytes are
// written, matching the severity ordering in the error-handling design.
type UnsupportedColumnError struct {
	Name  string
	Index int
	Kind  table.Kind
}

func (e *UnsupportedColumnError) Error() string {
	return fmt.Sprintf("estimate: column %q (index %d) has unsupported kind %v", e.Name, e.Index, e.Kind)
}

// Result bundles the sampled line-size estimate with the turbo
// fast-path eligibility decided in the same pass.
type Result struct {
	MaxLineLen int
	FastKind   field.FastKind
	FastPath   bool
}

// EstimateMaxLineLen samples up to maxSampleRanges contiguous ranges of up
// to maxSampleRows rows, evenly spaced through [0, t.Nrow), summing
// per-cell upper-bound byte widths to estimate each sampled row's width,
// and returns the maximum observed. It also rejects tables with an
// unrecognized column kind before any worker is spawned.
func EstimateMaxLineLen(t *table.Table, opts *table.WriteOptions) (Result, error) {
	for i := range t.Columns {
		if err := checkKind(&t.Columns[i], i); err != nil {
			return Result{}, err
		}
	}

	fastKind, isFast := field.DetectFastKind(t)
	res := Result{FastKind: fastKind, FastPath: isFast}

	if t.Nrow == 0 {
		return res, nil
	}

	rowIndexWidth := 0
	if opts.EmitRowIndex {
		rowIndexWidth = format.MaxIntDigits + 2 // +2 covers possible quoting
	}

	for _, rg := range sampleRanges(t.Nrow) {
		for row := rg.start; row < rg.end; row++ {
			width := rowIndexWidth
			for j := range t.Columns {
				width += maxCellWidth(&t.Columns[j], row, opts)
				if j > 0 {
					width++ // field separator
				}
			}
			width += len(opts.RowSep)
			if width > res.MaxLineLen {
				res.MaxLineLen = width
			}
		}
	}
	return res, nil
}

func checkKind(c *table.Column, idx int) error {
	switch c.Kind {
	case table.Bool, table.Int32, table.Int64, table.Float64, table.String, table.Factor:
		return nil
	default:
		return &UnsupportedColumnError{Name: c.Name, Index: idx, Kind: c.Kind}
	}
}

func maxCellWidth(c *table.Column, row int, opts *table.WriteOptions) int {
	switch c.Kind {
	case table.Bool:
		if c.BoolIsNA(row) {
			return len(opts.NAToken)
		}
		if opts.BoolAsInt {
			return 1
		}
		return 5 // "FALSE"
	case table.Int32:
		if c.Int32s[row] == table.NAInt32 {
			return len(opts.NAToken)
		}
		return format.MaxIntDigits
	case table.Int64:
		if c.Int64s[row] == table.NAInt64 {
			return len(opts.NAToken)
		}
		return format.MaxIntDigits
	case table.Float64:
		return format.MaxFloatDigits + len(opts.NAToken)
	case table.String:
		if c.StringIsNA(row) {
			return len(opts.NAToken)
		}
		return stringCellWidth(c.Strings[row], opts)
	case table.Factor:
		if c.FactorIsNA(row) {
			return len(opts.NAToken)
		}
		return stringCellWidth(c.Dictionary[c.FactorCodes[row]-1], opts)
	default:
		return 0
	}
}

func stringCellWidth(s []byte, opts *table.WriteOptions) int {
	if opts.QuoteMode == table.QuoteNever {
		return len(s)
	}
	return 2*len(s) + 2
}

type rowRange struct{ start, end int }

// sampleRanges spaces up to maxSampleRanges windows of up to
// maxSampleRows rows evenly across [0, nrow).
func sampleRanges(nrow int) []rowRange {
	if nrow <= maxSampleRanges*maxSampleRows {
		return []rowRange{{0, nrow}}
	}

	ranges := make([]rowRange, 0, maxSampleRanges)
	stride := nrow / maxSampleRanges
	for i := range maxSampleRanges {
		start := i * stride
		end := min(start+maxSampleRows, nrow)
		ranges = append(ranges, rowRange{start, end})
	}
	return ranges
}
