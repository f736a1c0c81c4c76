// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package guid_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/msiproducts/guid"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  string
	}{
		{
			desc:  "uppercase",
			input: "{12345678-1234-1234-1234-123456789012}",
			want:  "{12345678-1234-1234-1234-123456789012}",
		},
		{
			desc:  "lowercase_normalized_to_uppercase",
			input: "{1d8e6291-b0d5-35ec-8441-6616f567a0f7}",
			want:  "{1D8E6291-B0D5-35EC-8441-6616F567A0F7}",
		},
		{
			desc:  "mixed_case",
			input: "{aBcDeF01-2345-6789-AbCd-Ef0123456789}",
			want:  "{ABCDEF01-2345-6789-ABCD-EF0123456789}",
		},
		{
			desc:  "all_zero",
			input: "{00000000-0000-0000-0000-000000000000}",
			want:  "{00000000-0000-0000-0000-000000000000}",
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			g, err := guid.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned an unexpected error: %v", tc.input, err)
			}
			if got := g.String(); got != tc.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		desc  string
		input string
	}{
		{desc: "empty", input: ""},
		{desc: "no_braces", input: "12345678-1234-1234-1234-123456789012"},
		{desc: "missing_closing_brace", input: "{12345678-1234-1234-1234-123456789012"},
		{desc: "wrong_braces", input: "(12345678-1234-1234-1234-123456789012)"},
		{desc: "too_short", input: "{12345678-1234-1234-1234-12345678901}"},
		{desc: "too_long", input: "{12345678-1234-1234-1234-1234567890123}"},
		{desc: "hyphen_misplaced", input: "{1234567-81234-1234-1234-123456789012}"},
		{desc: "no_hyphens", input: "{12345678123412341234123456789012xxxx}"},
		{desc: "non_hex", input: "{1234567G-1234-1234-1234-123456789012}"},
		{desc: "leading_whitespace", input: " {12345678-1234-1234-1234-123456789012}"},
		{desc: "trailing_whitespace", input: "{12345678-1234-1234-1234-123456789012} "},
		{desc: "urn", input: "urn:uuid:12345678-1234-1234-1234-123456789012"},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := guid.Parse(tc.input)
			if !errors.Is(err, guid.ErrInvalidFormat) {
				t.Errorf("Parse(%q) returned error %v, want %v", tc.input, err, guid.ErrInvalidFormat)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse(%q) did not panic", "bogus")
		}
	}()
	guid.MustParse("bogus")
}

func TestFromBytes(t *testing.T) {
	raw := []byte{0x12, 0x34, 0x56, 0x78, 0x12, 0x34, 0x12, 0x34, 0x12, 0x34, 0x12, 0x34, 0x56, 0x78, 0x90, 0x12}
	g, err := guid.FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes(%v) returned an unexpected error: %v", raw, err)
	}
	if want := guid.MustParse("{12345678-1234-1234-1234-123456789012}"); g != want {
		t.Errorf("FromBytes(%v) = %v, want %v", raw, g, want)
	}

	// The GUID must not alias the input slice.
	raw[0] = 0xFF
	if g.Bytes()[0] != 0x12 {
		t.Errorf("FromBytes() result changed after mutating the input slice")
	}

	if _, err := guid.FromBytes(raw[:15]); !errors.Is(err, guid.ErrInvalidFormat) {
		t.Errorf("FromBytes(15 bytes) returned error %v, want %v", err, guid.ErrInvalidFormat)
	}
}

func TestCompare(t *testing.T) {
	a := guid.MustParse("{00000000-0000-0000-0000-000000000001}")
	b := guid.MustParse("{00000000-0000-0000-0000-000000000002}")
	c := guid.MustParse("{10000000-0000-0000-0000-000000000000}")

	tests := []struct {
		x, y guid.GUID
		want int
	}{
		{a, a, 0},
		{a, b, -1},
		{b, a, 1},
		{b, c, -1},
		{c, a, 1},
	}
	for _, tc := range tests {
		if got := tc.x.Compare(tc.y); got != tc.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
		if got := tc.x.Equal(tc.y); got != (tc.want == 0) {
			t.Errorf("%v.Equal(%v) = %t, want %t", tc.x, tc.y, got, tc.want == 0)
		}
	}
}

func TestIsNil(t *testing.T) {
	if !guid.Nil.IsNil() {
		t.Errorf("Nil.IsNil() = false, want true")
	}
	if guid.MustParse("{12345678-1234-1234-1234-123456789012}").IsNil() {
		t.Errorf("IsNil() = true for a non-zero GUID")
	}
}

func TestPacked(t *testing.T) {
	tests := []struct {
		canonical string
		packed    string
	}{
		{
			canonical: "{1D8E6291-B0D5-35EC-8441-6616F567A0F7}",
			packed:    "1926E8D15D0BCE53481466615F760A7F",
		},
		{
			canonical: "{12345678-1234-1234-1234-123456789012}",
			packed:    "87654321432143212143214365870921",
		},
	}

	for _, tc := range tests {
		t.Run(tc.canonical, func(t *testing.T) {
			g := guid.MustParse(tc.canonical)
			if got := g.Packed(); got != tc.packed {
				t.Errorf("Packed() = %q, want %q", got, tc.packed)
			}
			got, err := guid.ParsePacked(strings.ToLower(tc.packed))
			if err != nil {
				t.Fatalf("ParsePacked(%q) returned an unexpected error: %v", tc.packed, err)
			}
			if got != g {
				t.Errorf("ParsePacked(%q) = %v, want %v", tc.packed, got, g)
			}
		})
	}
}

func TestParsePacked_Invalid(t *testing.T) {
	for _, s := range []string{"", "1926E8D15D0BCE53481466615F760A7", "1926E8D15D0BCE53481466615F760A7Z", "{1D8E6291-B0D5-35EC-8441-6616F567A0F7}"} {
		if _, err := guid.ParsePacked(s); !errors.Is(err, guid.ErrInvalidFormat) {
			t.Errorf("ParsePacked(%q) returned error %v, want %v", s, err, guid.ErrInvalidFormat)
		}
	}
}

func TestJSON(t *testing.T) {
	type doc struct {
		Code guid.GUID `json:"code"`
	}
	in := doc{Code: guid.MustParse("{1D8E6291-B0D5-35EC-8441-6616F567A0F7}")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() returned an unexpected error: %v", err)
	}
	if want := `{"code":"{1D8E6291-B0D5-35EC-8441-6616F567A0F7}"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("json round trip returned an unexpected diff (-want +got): %v", diff)
	}
}

func canonicalGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		b := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "bytes")
		s := fmt.Sprintf("{%x-%x-%x-%x-%x}", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
		if rapid.Bool().Draw(t, "upper") {
			s = strings.ToUpper(s)
		}
		return s
	})
}

func TestRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := canonicalGen().Draw(t, "guid")
		g, err := guid.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) returned an unexpected error: %v", s, err)
		}
		if got, want := g.String(), strings.ToUpper(s); got != want {
			t.Fatalf("Parse(%q).String() = %q, want %q", s, got, want)
		}
		again, err := guid.Parse(g.String())
		if err != nil || again != g {
			t.Fatalf("Parse(String()) = %v, %v, want %v", again, err, g)
		}
	})
}

func TestPackedRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, err := guid.FromBytes(rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "bytes"))
		if err != nil {
			t.Fatalf("FromBytes() returned an unexpected error: %v", err)
		}
		got, err := guid.ParsePacked(g.Packed())
		if err != nil || got != g {
			t.Fatalf("ParsePacked(%q) = %v, %v, want %v", g.Packed(), got, err, g)
		}
	})
}
