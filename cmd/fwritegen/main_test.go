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

package main

import (
	"math"
	"testing"
)

// These pin the generator's math against internal/format's checked-in,
// already round-trip-validated lookup_tables_gen.go, so a future change
// to the big.Float derivation here can be checked without regenerating
// and recompiling internal/format.
func TestComputeSigPartsMatchesPowersOfTwo(t *testing.T) {
	sigParts := computeSigParts()
	for i := 1; i <= 52; i++ {
		want := math.Pow(2, -float64(i))
		if sigParts[i] != want {
			t.Errorf("sigParts[%d] = %v, want %v", i, sigParts[i], want)
		}
	}
}

func TestComputeExpTablesKnownEntries(t *testing.T) {
	expSig, expPow := computeExpTables()

	if expPow[0] != -308 {
		t.Errorf("expPow[0] = %d, want -308", expPow[0])
	}
	if math.Abs(expSig[0]-1.1125369292536007) > 1e-15 {
		t.Errorf("expSig[0] = %v, want ~1.1125369292536007", expSig[0])
	}

	// e=1023 is the biased zero exponent (2^0 = 1): expSig must be
	// exactly 1 with expPow 0.
	if expPow[1023] != 0 {
		t.Errorf("expPow[1023] = %d, want 0", expPow[1023])
	}
	if math.Abs(expSig[1023]-1.0) > 1e-15 {
		t.Errorf("expSig[1023] = %v, want 1.0", expSig[1023])
	}

	// expSig[1] must be exactly double expSig[0]: the denormal table entry
	// sits one binary exponent below the smallest normal one.
	if math.Abs(expSig[1]-2*expSig[0]) > 1e-15 {
		t.Errorf("expSig[1]/expSig[0] = %v, want 2", expSig[1]/expSig[0])
	}
}
