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

package fwrite

import (
	"bytes"
	"encoding/csv"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/fwrite/table"
)

// parseBack re-reads a plain-CSV rendering of a float64/int32/string table
// with a header, reconstructing the typed columns it should have come
// from. It is deliberately not a general CSV-to-Table importer — it knows
// the column kinds in advance, the way a round-trip test fixture does —
// just enough to exercise spec.md §8's round-trip laws ("parsing the
// output back ... recovers an equivalent table").
func parseBack(t *testing.T, data []byte, kinds []table.Kind) *table.Table {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	// QuoteAuto leaves a '"' in a field with no separator or newline
	// unquoted; LazyQuotes lets encoding/csv read such a field back as-is.
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parseBack: %v", err)
	}
	header := records[0]
	rows := records[1:]

	out := &table.Table{Nrow: len(rows)}
	for ci, kind := range kinds {
		col := table.Column{Name: header[ci], Kind: kind}
		switch kind {
		case table.Int32:
			col.Int32s = make([]int32, len(rows))
			for ri, row := range rows {
				if row[ci] == "" {
					col.Int32s[ri] = table.NAInt32
					continue
				}
				v, err := strconv.ParseInt(row[ci], 10, 32)
				if err != nil {
					t.Fatalf("row %d col %d: %v", ri, ci, err)
				}
				col.Int32s[ri] = int32(v)
			}
		case table.Float64:
			col.Float64s = make([]float64, len(rows))
			for ri, row := range rows {
				if row[ci] == "" {
					col.Float64s[ri] = math.NaN()
					continue
				}
				v, err := strconv.ParseFloat(row[ci], 64)
				if err != nil {
					t.Fatalf("row %d col %d: %v", ri, ci, err)
				}
				col.Float64s[ri] = v
			}
		case table.String:
			col.Strings = make([][]byte, len(rows))
			col.StringValid = make([]bool, len(rows))
			for ri, row := range rows {
				col.Strings[ri] = []byte(row[ci])
				col.StringValid[ri] = true
			}
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}

func TestRoundTripFloatAndIntTable(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const nrow = 200

	ints := make([]int32, nrow)
	floats := make([]float64, nrow)
	for i := range nrow {
		ints[i] = rng.Int32N(1_000_000) - 500_000
		// Keep to values the turbo algorithm's 15-significant-digit budget
		// round-trips: small integers scaled by a power of ten, matching
		// the "realistic decimal literal" case the algorithm targets.
		floats[i] = float64(rng.Int32N(1_000_000)) / 100
	}
	ints[3] = table.NAInt32

	src := &table.Table{
		Nrow: nrow,
		Columns: []table.Column{
			{Name: "id", Kind: table.Int32, Int32s: ints},
			{Name: "value", Kind: table.Float64, Float64s: floats},
		},
	}

	opts := table.Defaults()
	opts.EmitHeader = true
	// encoding/csv expects RFC4180 doubled-quote escaping; QuoteEscape's
	// backslash-escaped quotes are a data.table-specific convention this
	// test's parseBack is not built to read.
	opts.QuoteMethod = table.QuoteDouble

	var buf bytes.Buffer
	if err := WriteTable(src, opts, &CaptureSink{Buf: &buf}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got := parseBack(t, buf.Bytes(), []table.Kind{table.Int32, table.Float64})

	if diff := cmp.Diff(src, got, cmp.Comparer(func(a, b float64) bool {
		if math.IsNaN(a) && math.IsNaN(b) {
			return true
		}
		return a == b
	})); diff != "" {
		t.Errorf("round trip mismatch (-src +got):\n%s", diff)
	}
}

func TestRoundTripStringTableWithQuoting(t *testing.T) {
	src := &table.Table{
		Nrow: 4,
		Columns: []table.Column{
			{Name: "s", Kind: table.String, Strings: [][]byte{
				[]byte("plain"),
				[]byte("has,comma"),
				[]byte("has\"quote"),
				[]byte("has\nnewline"),
			}, StringValid: []bool{true, true, true, true}},
		},
	}

	opts := table.Defaults()
	opts.EmitHeader = true
	// encoding/csv expects RFC4180 doubled-quote escaping; QuoteEscape's
	// backslash-escaped quotes are a data.table-specific convention this
	// test's parseBack is not built to read.
	opts.QuoteMethod = table.QuoteDouble

	var buf bytes.Buffer
	if err := WriteTable(src, opts, &CaptureSink{Buf: &buf}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got := parseBack(t, buf.Bytes(), []table.Kind{table.String})

	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("round trip mismatch (-src +got):\n%s", diff)
	}
}
