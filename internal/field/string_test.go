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

func autoOpts() *table.WriteOptions {
	o := table.Defaults()
	return &o
}

func TestAppendStringScenario5(t *testing.T) {
	// quote_mode=auto quotes only on field_sep/'\n', never merely for an
	// embedded quote character.
	opts := autoOpts()
	cases := []struct {
		in, want string
	}{
		{"a,b", `"a,b"`},
		{`c"d`, `c"d`},
		{"ok", "ok"},
	}
	for _, c := range cases {
		got := string(AppendString(nil, []byte(c.in), false, opts))
		if got != c.want {
			t.Errorf("AppendString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAppendStringNAIsNeverQuoted(t *testing.T) {
	opts := autoOpts()
	opts.QuoteMode = table.QuoteAlways
	opts.NAToken = []byte("NA")
	got := string(AppendString(nil, []byte("irrelevant"), true, opts))
	if got != "NA" {
		t.Errorf("got %q, want NA unquoted", got)
	}
}

func TestAppendStringQuoteNever(t *testing.T) {
	opts := autoOpts()
	opts.QuoteMode = table.QuoteNever
	got := string(AppendString(nil, []byte("a,b"), false, opts))
	if got != "a,b" {
		t.Errorf("got %q", got)
	}
}

func TestAppendStringQuoteAlways(t *testing.T) {
	opts := autoOpts()
	opts.QuoteMode = table.QuoteAlways
	got := string(AppendString(nil, []byte("plain"), false, opts))
	if got != `"plain"` {
		t.Errorf("got %q", got)
	}
}

func TestAppendStringEscapeMethod(t *testing.T) {
	opts := autoOpts()
	opts.QuoteMode = table.QuoteAlways
	opts.QuoteMethod = table.QuoteEscape
	got := string(AppendString(nil, []byte(`a"b\c`), false, opts))
	want := `"a\"b\\c"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendStringDoubleMethod(t *testing.T) {
	opts := autoOpts()
	opts.QuoteMode = table.QuoteAlways
	opts.QuoteMethod = table.QuoteDouble
	got := string(AppendString(nil, []byte(`a"b\c`), false, opts))
	want := `"a""b\c"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendStringAutoTriggersOnNewline(t *testing.T) {
	opts := autoOpts()
	got := string(AppendString(nil, []byte("line1\nline2"), false, opts))
	want := "\"line1\nline2\""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaxStringFieldLen(t *testing.T) {
	if MaxStringFieldLen(5) != 12 {
		t.Errorf("got %d, want 12", MaxStringFieldLen(5))
	}
}
