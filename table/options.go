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

package table

import (
	"fmt"
	"runtime"
)

// QuoteMode controls when string fields are wrapped in quotes.
type QuoteMode int

const (
	// QuoteAuto quotes a string field only if it contains FieldSep or '\n'.
	QuoteAuto QuoteMode = iota
	QuoteAlways
	QuoteNever
)

// QuoteMethod controls how an embedded quote character is escaped once a
// field has been decided to need quoting.
type QuoteMethod int

const (
	// QuoteEscape prefixes '"' and '\\' with '\\'.
	QuoteEscape QuoteMethod = iota
	// QuoteDouble doubles every '"'; '\\' is left unchanged.
	QuoteDouble
)

// Progress is called from a dedicated reporter goroutine roughly once a
// second while WriteTable's batch pipeline runs. It never writes to the
// sink, but it can run while a worker's write is in progress. A nil
// Progress disables reporting.
type Progress func(rowsDone, nrow int)

// WriteOptions configures how a Table is rendered to delimited text. Every
// field has a documented default produced by Defaults().
type WriteOptions struct {
	FieldSep   byte
	RowSep     []byte // 1 or 2 bytes, typically "\n" or "\r\n"
	NAToken    []byte // may be empty
	DecimalSep byte   // must differ from FieldSep

	QuoteMode   QuoteMode
	QuoteMethod QuoteMethod

	BoolAsInt     bool
	EmitRowIndex  bool
	EmitHeader    bool

	BufferMiB int // 1..1024
	Threads   int // <=0 selects runtime.GOMAXPROCS(0)
	Turbo     bool

	Progress Progress
}

// Defaults returns the WriteOptions a plain CSV writer would use: comma
// field separator, LF row separator, empty NA token, dot decimal
// separator, automatic escape-quoting, TRUE/FALSE booleans, one 4 MiB
// buffer per worker, and turbo fast paths enabled.
func Defaults() WriteOptions {
	return WriteOptions{
		FieldSep:    ',',
		RowSep:      []byte{'\n'},
		NAToken:     nil,
		DecimalSep:  '.',
		QuoteMode:   QuoteAuto,
		QuoteMethod: QuoteEscape,
		BufferMiB:   4,
		Turbo:       true,
	}
}

// Validate range-checks the option set and fills in runtime defaults
// (notably Threads, when left unset). It must run before any worker is
// spawned: a validation failure is reported before touching the sink.
func (o *WriteOptions) Validate() error {
	if o.FieldSep == o.DecimalSep {
		return fmt.Errorf("table: decimal_sep must differ from field_sep (both %q)", o.FieldSep)
	}
	if len(o.RowSep) == 0 || len(o.RowSep) > 2 {
		return fmt.Errorf("table: row_sep must be 1 or 2 bytes, got %d", len(o.RowSep))
	}
	if o.BufferMiB <= 0 {
		o.BufferMiB = 4
	}
	if o.BufferMiB > 1024 {
		return fmt.Errorf("table: buffer_mib must be in [1, 1024], got %d", o.BufferMiB)
	}
	if o.Threads <= 0 {
		o.Threads = runtime.GOMAXPROCS(0)
	}
	return nil
}
