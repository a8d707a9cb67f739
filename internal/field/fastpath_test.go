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
	"testing"

	"github.com/ajroetker/fwrite/table"
)

func TestDetectFastKind(t *testing.T) {
	allFloat := &table.Table{Columns: []table.Column{
		{Kind: table.Float64, Float64s: []float64{1, 2}},
		{Kind: table.Float64, Float64s: []float64{1, 2}},
	}}
	if k, ok := DetectFastKind(allFloat); !ok || k != FastFloat64 {
		t.Errorf("got %v,%v want FastFloat64,true", k, ok)
	}

	mixed := &table.Table{Columns: []table.Column{
		{Kind: table.Float64, Float64s: []float64{1}},
		{Kind: table.String, Strings: [][]byte{[]byte("x")}},
	}}
	if _, ok := DetectFastKind(mixed); ok {
		t.Errorf("mixed table should not be fast-path eligible")
	}

	withRowNames := &table.Table{
		RowNames: []string{"r1"},
		Columns:  []table.Column{{Kind: table.Int64, Int64s: []int64{1}}},
	}
	if _, ok := DetectFastKind(withRowNames); ok {
		t.Errorf("table with row names should not be fast-path eligible")
	}

	empty := &table.Table{}
	if _, ok := DetectFastKind(empty); ok {
		t.Errorf("empty table should not be fast-path eligible")
	}
}

func TestAppendRowFastMatchesGeneral(t *testing.T) {
	tb := &table.Table{
		Nrow: 3,
		Columns: []table.Column{
			{Kind: table.Float64, Float64s: []float64{1.5, 2.25, 3.125}},
			{Kind: table.Float64, Float64s: []float64{-1.5, 0, 100}},
		},
	}
	opts := table.Defaults()
	e := &RowEncoder{Opts: &opts}

	kind, ok := DetectFastKind(tb)
	if !ok {
		t.Fatal("expected fast-path eligible table")
	}

	var general, fast []byte
	for i := range tb.Nrow {
		general = e.AppendRow(general, tb, i)
		fast = e.AppendRowFast(fast, tb, i, kind)
	}
	if string(general) != string(fast) {
		t.Errorf("fast path diverged from general path:\n general=%q\n fast=%q", general, fast)
	}
}

func TestAppendRowFastWithRowIndex(t *testing.T) {
	tb := &table.Table{
		Nrow: 2,
		Columns: []table.Column{
			{Kind: table.Int32, Int32s: []int32{10, 20}},
		},
	}
	opts := table.Defaults()
	opts.EmitRowIndex = true
	e := &RowEncoder{Opts: &opts}

	kind, ok := DetectFastKind(tb)
	if !ok {
		t.Fatal("expected fast-path eligible table")
	}
	var fast []byte
	for i := range tb.Nrow {
		fast = e.AppendRowFast(fast, tb, i, kind)
	}
	want := "\"1\",10\n\"2\",20\n"
	if string(fast) != want {
		t.Errorf("got %q, want %q", fast, want)
	}
}
