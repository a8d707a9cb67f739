// Command fwritegen computes the lookup tables internal/format's turbo
// float formatter depends on (sigParts, expSig, expPow) and writes them as
// a formatted Go source file.
//
// Usage:
//
//	fwritegen -output internal/format/lookup_tables_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/fwritegen -output lookup_tables_gen.go
//
// The tables are computed at 256-bit precision via math/big so that
// rounding each entry down to float64 is correct to the last bit; doing
// the same arithmetic directly in float64 would compound rounding error
// across the table and silently shift which doubles round-trip.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math/big"
	"os"

	"golang.org/x/tools/imports"
)

const precisionBits = 256

var output = flag.String("output", "", "output Go file (required)")

func main() {
	flag.Parse()
	if *output == "" {
		fmt.Fprintln(os.Stderr, "fwritegen: -output is required")
		os.Exit(1)
	}

	sigParts := computeSigParts()
	expSig, expPow := computeExpTables()

	src, err := render(sigParts, expSig, expPow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fwritegen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "fwritegen: %v\n", err)
		os.Exit(1)
	}
}

// computeSigParts returns, for i in [1,52], the contribution of fraction
// bit (52-i) to a double's significand: exactly 2^-i. It is computed via
// big.Float purely for symmetry with computeExpTables — the value is
// already exact in binary and loses nothing rounding to float64.
func computeSigParts() [53]float64 {
	var out [53]float64
	for i := 1; i <= 52; i++ {
		v := new(big.Float).SetPrec(precisionBits).SetMantExp(big.NewFloat(1), -i)
		out[i], _ = v.Float64()
	}
	return out
}

// computeExpTables returns, for every biased exponent e in [0,2047], the
// pair (expSig[e], expPow[e]) such that a double with that exponent and
// significand (1+acc) decomposes as (1+acc)*expSig[e] * 10^expPow[e], with
// (1+acc)*expSig[e] landing in [1,10) (decompose's normalize step corrects
// the rare overflow to exactly 10).
func computeExpTables() (expSig [2048]float64, expPow [2048]int32) {
	ten := new(big.Float).SetPrec(precisionBits).SetInt64(10)
	two := new(big.Float).SetPrec(precisionBits).SetInt64(2)
	log10_2 := log10Two(precisionBits)

	for e := 0; e < 2048; e++ {
		if e == 2047 {
			continue // Inf/NaN: AppendFloat never reaches decompose for these.
		}

		// e==0 (subnormals) holds 2^-1023, one binary exponent below the
		// smallest normal; decompose formats subnormals from expSig[1]
		// instead, since they have no implicit leading 1 bit.
		unbiasedExp := e - 1023
		if e == 0 {
			unbiasedExp = -1023
		}

		fexp := new(big.Float).SetPrec(precisionBits).SetInt64(int64(unbiasedExp))
		fexp.Mul(fexp, log10_2)
		expOut, _ := fexp.Int64() // truncates toward zero
		if new(big.Float).SetPrec(precisionBits).SetInt64(expOut).Cmp(fexp) > 0 {
			expOut-- // floor, so the mantissa lands in [1,10) for negative exponents
		}

		tenPow := bigPowInt(ten, expOut, precisionBits)
		twoExp := bigPowInt(two, int64(unbiasedExp), precisionBits)

		sig := new(big.Float).SetPrec(precisionBits).Quo(twoExp, tenPow)
		f64, _ := sig.Float64()

		expSig[e] = f64
		expPow[e] = int32(expOut)
	}
	return expSig, expPow
}

// bigPowInt returns base^n at the given precision for any integer n
// (positive or negative), via binary exponentiation.
func bigPowInt(base *big.Float, n int64, prec uint) *big.Float {
	result := new(big.Float).SetPrec(prec).SetInt64(1)
	b := new(big.Float).SetPrec(prec).Copy(base)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
		n >>= 1
	}
	if neg {
		result.Quo(new(big.Float).SetPrec(prec).SetInt64(1), result)
	}
	return result
}

// log10Two computes log10(2) via the Taylor series for atanh, accurate to
// well beyond float64 precision at the chosen big.Float precision.
func log10Two(prec uint) *big.Float {
	// log(2) = 2*atanh(1/3) = 2*sum_{k odd} (1/3)^k / k
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	three := new(big.Float).SetPrec(prec).SetInt64(3)
	x := new(big.Float).SetPrec(prec).Quo(one, three)
	xk := new(big.Float).SetPrec(prec).Copy(x)
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)

	for k := int64(1); k < 400; k += 2 {
		term.Quo(xk, new(big.Float).SetPrec(prec).SetInt64(k))
		sum.Add(sum, term)
		xk.Mul(xk, x2)
	}
	ln2 := new(big.Float).SetPrec(prec).Mul(sum, new(big.Float).SetPrec(prec).SetInt64(2))

	ln10 := computeLn10(prec)
	return new(big.Float).SetPrec(prec).Quo(ln2, ln10)
}

// computeLn10 computes log(10) = log(2) + log(5) via the same atanh
// series applied to 5 = (1+2/3)/(1-2/3) style expansion around a
// fast-converging point.
func computeLn10(prec uint) *big.Float {
	// ln(10) = ln(2) + ln(5); ln(5) = 2*atanh(2/3).
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	three := new(big.Float).SetPrec(prec).SetInt64(3)
	two := new(big.Float).SetPrec(prec).SetInt64(2)

	x := new(big.Float).SetPrec(prec).Quo(two, three)
	xk := new(big.Float).SetPrec(prec).Copy(x)
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)
	for k := int64(1); k < 800; k += 2 {
		term.Quo(xk, new(big.Float).SetPrec(prec).SetInt64(k))
		sum.Add(sum, term)
		xk.Mul(xk, x2)
	}
	ln5 := new(big.Float).SetPrec(prec).Mul(sum, two)

	// ln(2) = 2*atanh(1/3), recomputed here rather than shared with
	// log10Two to keep this function self-contained for callers that only
	// need ln(10).
	y := new(big.Float).SetPrec(prec).Quo(one, three)
	yk := new(big.Float).SetPrec(prec).Copy(y)
	y2 := new(big.Float).SetPrec(prec).Mul(y, y)
	sum2 := new(big.Float).SetPrec(prec)
	term2 := new(big.Float).SetPrec(prec)
	for k := int64(1); k < 400; k += 2 {
		term2.Quo(yk, new(big.Float).SetPrec(prec).SetInt64(k))
		sum2.Add(sum2, term2)
		yk.Mul(yk, y2)
	}
	ln2 := new(big.Float).SetPrec(prec).Mul(sum2, two)

	return new(big.Float).SetPrec(prec).Add(ln2, ln5)
}

// perLine is how many literals render packs onto one source line before
// wrapping. The checked-in lookup_tables_gen.go groups sigParts and expSig
// the same way; its expPow is grouped eight to a line.
const perLine = 4

func render(sigParts [53]float64, expSig [2048]float64, expPow [2048]int32) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprint(&buf, `// Code generated by cmd/fwritegen. DO NOT EDIT.
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

package format

`)

	fmt.Fprint(&buf, "// sigParts holds 2^-i for i in [1,52]; sigParts[0] is unused (kept 0 so\n")
	fmt.Fprint(&buf, "// the summation loop can index by bit position directly).\n")
	fmt.Fprint(&buf, "var sigParts = [53]float64{\n")
	writeGroupedFloats(&buf, sigParts[:])
	fmt.Fprint(&buf, "}\n\n")

	fmt.Fprint(&buf, "// expSig holds the mantissa in [1,10) of 2^(i-1023), for i in [0,2047].\n")
	fmt.Fprint(&buf, "var expSig = [2048]float64{\n")
	writeGroupedFloats(&buf, expSig[:])
	fmt.Fprint(&buf, "}\n\n")

	fmt.Fprint(&buf, "// expPow holds the base-10 exponent paired with expSig[i]: 2^(i-1023) ==\n")
	fmt.Fprint(&buf, "// expSig[i] * 10^expPow[i].\n")
	fmt.Fprint(&buf, "var expPow = [2048]int32{\n")
	writeGroupedInt32s(&buf, expPow[:])
	fmt.Fprint(&buf, "}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return imports.Process(*output, formatted, nil)
}

// writeGroupedFloats emits vs as positional (unindexed) literals, perLine
// per source line, so the array's value just walks the index implicitly —
// matching the style of the checked-in lookup_tables_gen.go.
func writeGroupedFloats(buf *bytes.Buffer, vs []float64) {
	for i := 0; i < len(vs); i += perLine {
		end := min(i+perLine, len(vs))
		fmt.Fprint(buf, "\t")
		for j := i; j < end; j++ {
			fmt.Fprintf(buf, "%v, ", vs[j])
		}
		fmt.Fprint(buf, "\n")
	}
}

func writeGroupedInt32s(buf *bytes.Buffer, vs []int32) {
	for i := 0; i < len(vs); i += perLine {
		end := min(i+perLine, len(vs))
		fmt.Fprint(buf, "\t")
		for j := i; j < end; j++ {
			fmt.Fprintf(buf, "%d, ", vs[j])
		}
		fmt.Fprint(buf, "\n")
	}
}
