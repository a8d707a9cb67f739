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
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Sink is the destination WriteTable renders to. FileSink and CaptureSink
// are the two implementations the package ships; a caller may supply its
// own as long as Open returns a fresh, writable stream.
type Sink interface {
	// Open returns the stream to write to. WriteTable calls it exactly
	// once and closes the returned WriteCloser when done, even on error.
	Open() (io.WriteCloser, error)

	// Path names the sink for error messages; may be empty.
	Path() string

	// SingleThreaded forces Threads=1 regardless of WriteOptions,
	// because the underlying stream is not safe for ordered concurrent
	// writers of its own accord (an in-process buffer has no syscall
	// serialization point to hang the turnstile on).
	SingleThreaded() bool
}

// FileSink writes to a path on disk, truncating it unless Append is set.
type FileSink struct {
	Path_  string
	Append bool
}

// NewFileSink is the usual constructor; FileSink's fields are also valid
// to set directly.
func NewFileSink(path string, append bool) *FileSink {
	return &FileSink{Path_: path, Append: append}
}

func (s *FileSink) Path() string        { return s.Path_ }
func (s *FileSink) SingleThreaded() bool { return false }

func (s *FileSink) Open() (io.WriteCloser, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if s.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(s.Path_, flags, 0644)
	if err != nil {
		return nil, s.diagnose(err)
	}
	return f, nil
}

// diagnose enriches an open failure by probing accessibility directly:
// distinguishing "the path does not exist" from "the path exists but this
// process cannot write to it" gives a caller a much better error than
// os.OpenFile's bare errno would on its own.
func (s *FileSink) diagnose(openErr error) error {
	switch {
	case unix.Access(s.Path_, unix.F_OK) != nil:
		return fmt.Errorf("%w: %q does not exist", openErr, s.Path_)
	case unix.Access(s.Path_, unix.W_OK) != nil:
		return fmt.Errorf("%w: %q exists but is not writable", openErr, s.Path_)
	default:
		return openErr
	}
}

// CaptureSink writes into an in-process buffer instead of a file. Not
// re-entrant: SingleThreaded always clamps the writer to one goroutine,
// since bytes.Buffer has no internal synchronization of its own.
type CaptureSink struct {
	Buf *bytes.Buffer
}

func (s *CaptureSink) Path() string        { return "<memory>" }
func (s *CaptureSink) SingleThreaded() bool { return true }

func (s *CaptureSink) Open() (io.WriteCloser, error) {
	if s.Buf == nil {
		s.Buf = &bytes.Buffer{}
	}
	return nopCloser{s.Buf}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
