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

// Package field implements the field-encoding state machine fwrite uses
// per cell: string quoting, the per-row dispatch across column kinds, and
// the turbo fast paths that skip per-cell type dispatch for homogeneous
// numeric tables.
package field

import "github.com/ajroetker/fwrite/table"

// AppendString appends s to dst per the quoting rules in opts, or naToken
// if isNA. NA is never quoted, even under QuoteAlways — this is what lets
// a reader distinguish a missing value from the literal string "NA" when
// NAToken is chosen to be "NA" (caller's responsibility to avoid that
// ambiguity if it matters).
//
// QuoteAuto performs a two-phase copy: it optimistically copies s while
// scanning for FieldSep or '\n'. If the scan completes clean, the
// optimistic copy is already the answer. If a trigger byte is found
// partway through, the cursor rewinds to the field's start and the field
// is re-emitted with quoting from scratch — the string is scanned at most
// twice, never re-allocated.
func AppendString(dst []byte, s []byte, isNA bool, opts *table.WriteOptions) []byte {
	if isNA {
		return append(dst, opts.NAToken...)
	}

	switch opts.QuoteMode {
	case table.QuoteNever:
		return append(dst, s...)
	case table.QuoteAlways:
		return appendQuoted(dst, s, opts.QuoteMethod)
	default: // QuoteAuto
		return appendAutoQuoted(dst, s, opts.QuoteMethod, opts.FieldSep)
	}
}

func appendAutoQuoted(dst []byte, s []byte, method table.QuoteMethod, fieldSep byte) []byte {
	start := len(dst)
	for _, b := range s {
		if b == fieldSep || b == '\n' {
			dst = dst[:start]
			return appendQuoted(dst, s, method)
		}
		dst = append(dst, b)
	}
	return dst
}

func appendQuoted(dst []byte, s []byte, method table.QuoteMethod) []byte {
	dst = append(dst, '"')
	switch method {
	case table.QuoteDouble:
		for _, b := range s {
			if b == '"' {
				dst = append(dst, '"')
			}
			dst = append(dst, b)
		}
	default: // QuoteEscape
		for _, b := range s {
			if b == '"' || b == '\\' {
				dst = append(dst, '\\')
			}
			dst = append(dst, b)
		}
	}
	dst = append(dst, '"')
	return dst
}

// MaxStringFieldLen returns the worst-case number of bytes AppendString
// can write for a string of length n: every byte quote-sensitive, plus
// the surrounding quotes.
func MaxStringFieldLen(n int) int {
	return 2*n + 2
}
