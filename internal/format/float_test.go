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

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendFloatScenarios(t *testing.T) {
	// Representative shortest-round-trip decimal renderings.
	cases := []struct {
		x    float64
		want string
	}{
		{3.1416, "3.1416"},
		{30460.0, "30460"},
		{0.0072, "0.0072"},
		{1e-300, "1e-300"},
		{math.NaN(), ""},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
		{0.0, "0"},
		{math.Copysign(0, -1), "0"},
	}
	for _, c := range cases {
		got := string(AppendFloat(nil, c.x, '.', nil, true))
		if got != c.want {
			t.Errorf("AppendFloat(%v) = %q, want %q", c.x, got, c.want)
		}
	}
}

func TestAppendFloatNATokenOnNaN(t *testing.T) {
	got := string(AppendFloat(nil, math.NaN(), '.', []byte("NA"), true))
	require.Equal(t, "NA", got)
}

func TestAppendFloatDecimalSep(t *testing.T) {
	got := string(AppendFloat(nil, 3.14, ',', nil, true))
	require.Equal(t, "3,14", got)
}

func TestAppendFloatScientificExponentWidth(t *testing.T) {
	// 1e5 renders scientific (1e+05): its fixed form "100000" is 6 bytes,
	// wider than the 5-byte scientific form.
	got := string(AppendFloat(nil, 1e5, '.', nil, true))
	require.Equal(t, "1e+05", got)

	got = string(AppendFloat(nil, 1e-300, '.', nil, true))
	require.Equal(t, "1e-300", got)

	got = string(AppendFloat(nil, 1e300, '.', nil, true))
	require.Equal(t, "1e+300", got)
}

// TestAppendFloatRoundTripCommonCase pins the documented guarantee: any
// double whose exact decimal value needs at most 15 significant digits
// round-trips bit-for-bit. This is the realistic shape of data produced by
// decimal literals or ordinary arithmetic. A round-trip guarantee for
// arbitrary 64-bit patterns is not claimed: the turbo path keeps at most
// 15 significant digits, and some doubles need 16 or 17 to be recovered
// exactly (the same tradeoff the original data.table fwrite.c algorithm
// makes).
func TestAppendFloatRoundTripCommonCase(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := range 20000 {
		nd := 1 + r.IntN(15)
		lo := int64(1)
		for range nd - 1 {
			lo *= 10
		}
		hi := lo * 10
		mant := lo
		if nd > 1 {
			mant = lo + r.Int64N(hi-lo)
		} else {
			mant = r.Int64N(10)
		}
		exp := r.IntN(41) - 20
		s := fmt.Sprintf("%de%d", mant, exp)
		x, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		if x == 0 || math.IsInf(x, 0) {
			continue
		}
		got := string(AppendFloat(nil, x, '.', nil, true))
		back, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("case %d: ParseFloat(%q): %v (from x=%v)", i, got, err, x)
		}
		if back != x {
			t.Fatalf("case %d: round trip x=%v (%s) encoded=%q back=%v", i, x, s, got, back)
		}
	}
}

func TestAppendFloatFallbackRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for range 20000 {
		bits := r.Uint64()
		x := math.Float64frombits(bits)
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			continue
		}
		got := string(AppendFloat(nil, x, '.', nil, false))
		back, err := strconv.ParseFloat(got, 64)
		require.NoError(t, err)
		if back != x {
			t.Fatalf("fallback round trip failed: x=%v encoded=%q back=%v", x, got, back)
		}
	}
}

func TestAppendFloatAppends(t *testing.T) {
	dst := []byte("x=")
	dst = AppendFloat(dst, 2.5, '.', nil, true)
	require.Equal(t, "x=2.5", string(dst))
}
