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

package semantic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/msiproducts/semantic"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  semantic.Version
	}{
		{input: "1.2", want: semantic.Version{Major: 1, Minor: 2, Build: -1, Revision: -1}},
		{input: "1.2.3", want: semantic.Version{Major: 1, Minor: 2, Build: 3, Revision: -1}},
		{input: "1.2.3.4", want: semantic.Version{Major: 1, Minor: 2, Build: 3, Revision: 4}},
		{input: "10.0.19041.1", want: semantic.Version{Major: 10, Minor: 0, Build: 19041, Revision: 1}},
		{input: "0.0", want: semantic.Version{Major: 0, Minor: 0, Build: -1, Revision: -1}},
		{input: "2147483647.0", want: semantic.Version{Major: 2147483647, Minor: 0, Build: -1, Revision: -1}},
		{input: "01.002", want: semantic.Version{Major: 1, Minor: 2, Build: -1, Revision: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := semantic.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned an unexpected error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) returned an unexpected diff (-want +got): %v", tc.input, diff)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{
		"",
		"1",
		"1.2.3.4.5",
		"1..2",
		"1.2.",
		".1.2",
		"-1.2",
		"+1.2",
		"1.2a",
		"1. 2",
		" 1.2",
		"2147483648.0",
		"v1.2",
		"1.2-beta",
	} {
		t.Run(input, func(t *testing.T) {
			if _, err := semantic.Parse(input); !errors.Is(err, semantic.ErrInvalidVersion) {
				t.Errorf("Parse(%q) returned error %v, want %v", input, err, semantic.ErrInvalidVersion)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"1.2", "1.2.3", "1.2.3.4", "0.0.0.0"} {
		if got := semantic.MustParse(s).String(); got != s {
			t.Errorf("MustParse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2", "1.2", 0},
		{"1.2.3.4", "1.2.3.4", 0},
		{"1.2", "1.3", -1},
		{"1.10", "1.9", 1},
		{"2.0", "1.99.99.99", 1},
		{"1.2", "1.2.0", -1},
		{"1.2.0", "1.2", 1},
		{"1.2.3", "1.2.3.0", -1},
		{"1.2.3.5", "1.2.3.4", 1},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tc.a, tc.b), func(t *testing.T) {
			if got := semantic.MustParse(tc.a).Compare(semantic.MustParse(tc.b)); got != tc.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 4).Draw(t, "components")
		comps := rapid.SliceOfN(rapid.IntRange(0, 1<<31-1), n, n).Draw(t, "values")
		s := fmt.Sprint(comps[0])
		for _, c := range comps[1:] {
			s += fmt.Sprintf(".%d", c)
		}

		v, err := semantic.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) returned an unexpected error: %v", s, err)
		}
		if got := v.String(); got != s {
			t.Fatalf("Parse(%q).String() = %q", s, got)
		}
		if v.Compare(v) != 0 {
			t.Fatalf("%v.Compare(itself) != 0", v)
		}
	})
}
