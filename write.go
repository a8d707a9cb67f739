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
	"github.com/ajroetker/fwrite/internal/estimate"
	"github.com/ajroetker/fwrite/internal/field"
	"github.com/ajroetker/fwrite/internal/pipeline"
	"github.com/ajroetker/fwrite/table"
)

// WriteTable renders t to sink according to opts: validate table and
// options, open the sink, emit the optional header on the caller's
// goroutine, then hand the row batches to the parallel, order-preserving
// pipeline. Exactly one error is returned, the first one observed by
// validation, the size estimator, the header write, or any pipeline
// worker.
func WriteTable(t *table.Table, opts table.WriteOptions, sink Sink) (err error) {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	w, err := sink.Open()
	if err != nil {
		return err
	}
	// A write failure is reported in preference to a close failure; a
	// close failure is only surfaced when the write otherwise succeeded
	// (fwrite.c:694's `if (f!=-1 && CLOSE(f) && !failed)`).
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = &pipeline.Error{Code: pipeline.FailWrite, Path: sink.Path(), Err: cerr}
		}
	}()

	res, err := estimate.EstimateMaxLineLen(t, &opts)
	if err != nil {
		return err
	}

	enc := &field.RowEncoder{Opts: &opts}
	enc.Prepare(t)

	if opts.EmitHeader {
		header := enc.AppendHeader(make([]byte, 0, res.MaxLineLen), t)
		if _, err := w.Write(header); err != nil {
			return &pipeline.Error{Code: pipeline.FailWrite, Path: sink.Path(), Err: err}
		}
	}

	threads := opts.Threads
	if sink.SingleThreaded() {
		threads = 1
	}

	bufferBytes := opts.BufferMiB * (1 << 20)
	plan := pipeline.PlanBatches(t.Nrow, res.MaxLineLen, bufferBytes, threads)
	batches := plan.Batches(t.Nrow)

	// Turbo gates the fast row-dispatch path, not just AppendFloat's digit
	// algorithm: with Turbo off, every row goes through the general
	// per-cell switch even on an otherwise fast-path-eligible table.
	useFast := res.FastPath && opts.Turbo

	format := func(dst []byte, start, end int) []byte {
		for row := start; row < end; row++ {
			if useFast {
				dst = enc.AppendRowFast(dst, t, row, res.FastKind)
			} else {
				dst = enc.AppendRow(dst, t, row)
			}
		}
		return dst
	}

	var progress func(batchesDone, numBatches int)
	if opts.Progress != nil {
		rowsPerBatch := plan.RowsPerBatch
		progress = func(batchesDone, numBatches int) {
			rowsDone := min(batchesDone*rowsPerBatch, t.Nrow)
			opts.Progress(rowsDone, t.Nrow)
		}
	}

	return pipeline.Run(w, batches, plan.Threads, bufferBytes, sink.Path(), format, progress)
}
