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

// Package format implements the hand-rolled, allocation-free numeric
// formatters fwrite writes directly into a caller-owned byte buffer: a
// signed decimal integer encoder and a shortest-round-trip IEEE-754 double
// encoder built from a pair of precomputed lookup tables.
package format

// MaxIntDigits is the maximum number of bytes AppendInt can write for a
// signed 64-bit integer, including an optional leading '-': 19 digits plus
// sign.
const MaxIntDigits = 20

// AppendInt appends the decimal representation of x to dst and returns the
// extended slice. No leading '+' is ever emitted. math.MinInt64 is handled
// correctly by negating through the unsigned domain, since -MinInt64
// overflows int64.
func AppendInt(dst []byte, x int64) []byte {
	if x == 0 {
		return append(dst, '0')
	}

	neg := x < 0
	var u uint64
	if neg {
		u = uint64(-(x + 1)) + 1 // avoid overflow on MinInt64
	} else {
		u = uint64(x)
	}

	var buf [MaxIntDigits]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return append(dst, buf[i:]...)
}

// AppendInt32 appends the decimal representation of a 32-bit integer.
func AppendInt32(dst []byte, x int32) []byte {
	return AppendInt(dst, int64(x))
}
