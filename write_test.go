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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/fwrite/table"
)

// failingCloseSink wraps a CaptureSink whose Open() succeeds and whose
// writes succeed, but whose Close() always errors — simulating a delayed
// flush/EIO surfaced only at close, as os.File can on some filesystems.
type failingCloseSink struct {
	buf bytes.Buffer
}

func (s *failingCloseSink) Path() string        { return "<failing-close>" }
func (s *failingCloseSink) SingleThreaded() bool { return true }

func (s *failingCloseSink) Open() (io.WriteCloser, error) {
	return failingCloser{&s.buf}, nil
}

type failingCloser struct{ io.Writer }

func (failingCloser) Close() error { return errors.New("close: simulated EIO") }

func TestWriteTableSurfacesCloseErrorOnOtherwiseSuccessfulWrite(t *testing.T) {
	tb := smallTable()
	opts := table.Defaults()

	sink := &failingCloseSink{}
	err := WriteTable(tb, opts, sink)
	require.Error(t, err)
	require.Contains(t, err.Error(), "simulated EIO")

	// The payload itself was written before the close failure.
	require.NotEmpty(t, sink.buf.String())
}

func smallTable() *table.Table {
	return &table.Table{
		Nrow: 3,
		Columns: []table.Column{
			{Name: "id", Kind: table.Int32, Int32s: []int32{1, 2, table.NAInt32}},
			{Name: "value", Kind: table.Float64, Float64s: []float64{1.5, 2.25, 100}},
			{Name: "label", Kind: table.String, Strings: [][]byte{[]byte("a"), []byte("b,c"), []byte("d")}},
		},
	}
}

func TestWriteTableToCaptureSink(t *testing.T) {
	tb := smallTable()
	opts := table.Defaults()
	opts.EmitHeader = true

	var buf bytes.Buffer
	err := WriteTable(tb, opts, &CaptureSink{Buf: &buf})
	require.NoError(t, err)

	want := "id,value,label\n1,1.5,a\n2,2.25,\"b,c\"\n,100,d\n"
	require.Equal(t, want, buf.String())
}

func TestWriteTableFastPathMatchesGeneralPath(t *testing.T) {
	// A uniform-numeric table is fast-path eligible; toggling Turbo off
	// forces the general per-cell dispatch for the very same table. Both
	// must render identical bytes for values whose decimal form is short
	// enough that the turbo and shortest-round-trip algorithms agree.
	tb := &table.Table{
		Nrow: 500,
		Columns: []table.Column{
			{Name: "a", Kind: table.Float64, Float64s: makeFloats(500)},
			{Name: "b", Kind: table.Float64, Float64s: makeFloats(500)},
		},
	}
	opts := table.Defaults()

	var turbo, plain bytes.Buffer
	opts.Turbo = true
	require.NoError(t, WriteTable(tb, opts, &CaptureSink{Buf: &turbo}))

	opts.Turbo = false
	require.NoError(t, WriteTable(tb, opts, &CaptureSink{Buf: &plain}))

	require.Equal(t, plain.String(), turbo.String())
}

func makeFloats(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * 1.25
	}
	return out
}

func TestWriteTableToFileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	tb := smallTable()
	opts := table.Defaults()
	opts.Threads = 2

	require.NoError(t, WriteTable(tb, opts, &FileSink{Path_: path}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1,1.5,a\n2,2.25,\"b,c\"\n,100,d\n", string(got))
}

func TestWriteTableRejectsMismatchedColumnLength(t *testing.T) {
	tb := &table.Table{
		Nrow: 2,
		Columns: []table.Column{
			{Name: "a", Kind: table.Int32, Int32s: []int32{1}},
		},
	}
	opts := table.Defaults()
	err := WriteTable(tb, opts, &CaptureSink{Buf: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestWriteTableRejectsBadOptions(t *testing.T) {
	tb := smallTable()
	opts := table.Defaults()
	opts.DecimalSep = opts.FieldSep
	err := WriteTable(tb, opts, &CaptureSink{Buf: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestWriteTableFileSinkOpenFailureNamesPath(t *testing.T) {
	opts := table.Defaults()
	tb := smallTable()
	err := WriteTable(tb, opts, &FileSink{Path_: filepath.Join("no", "such", "dir", "out.csv")})
	require.Error(t, err)
	require.Contains(t, err.Error(), filepath.Join("no", "such", "dir", "out.csv"))
}

func TestWriteTableProgressReportsTableNrow(t *testing.T) {
	tb := &table.Table{
		Nrow: 10_000,
		Columns: []table.Column{
			{Name: "a", Kind: table.Int64, Int64s: makeInts(10_000)},
		},
	}
	opts := table.Defaults()
	opts.BufferMiB = 1

	var lastRows, lastNrow int
	opts.Progress = func(rowsDone, nrow int) {
		lastRows, lastNrow = rowsDone, nrow
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(tb, opts, &CaptureSink{Buf: &buf}))
	if lastNrow != 0 {
		require.Equal(t, tb.Nrow, lastNrow)
	}
	_ = lastRows
}

func makeInts(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}
