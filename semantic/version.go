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

// Package semantic parses and compares the product versions reported by Windows Installer.
package semantic

import (
	"errors"
	"fmt"
	"strings"
)

const (
	minComponents = 2
	maxComponents = 4
)

// ErrInvalidVersion is returned when a version string cannot be parsed.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a dotted numeric product version of the form major.minor[.build[.revision]].
// Build and Revision are -1 when the version string does not define them.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// Parse parses a version made of two to four dot-separated non-negative decimal components,
// e.g. "1.2", "10.0.19041" or "1.2.3.4".
func Parse(str string) (Version, error) {
	parts := strings.Split(str, ".")
	if len(parts) < minComponents || len(parts) > maxComponents {
		return Version{}, fmt.Errorf("%w: %q must have between %d and %d components", ErrInvalidVersion, str, minComponents, maxComponents)
	}

	comps := []int{-1, -1, -1, -1}
	for i, p := range parts {
		n, err := convertComponent(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w in %q", err, str)
		}
		comps[i] = n
	}

	return Version{
		Major:    comps[0],
		Minor:    comps[1],
		Build:    comps[2],
		Revision: comps[3],
	}, nil
}

// MustParse is like Parse but panics if str is not a valid version.
func MustParse(str string) Version {
	v, err := Parse(str)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Version) components() components {
	return components{v.Major, v.Minor, v.Build, v.Revision}
}

// String returns the version with only its defined components.
func (v Version) String() string {
	var sb strings.Builder
	for i, c := range v.components() {
		if c < 0 {
			break
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(&sb, "%d", c)
	}

	return sb.String()
}

// Compare returns 0 if v == w, -1 if v < w, or +1 if v > w.
// An undefined component sorts before any defined one, so 1.2 < 1.2.0.
func (v Version) Compare(w Version) int {
	return v.components().Cmp(w.components())
}

// Equal reports whether v and w are the same version.
func (v Version) Equal(w Version) bool {
	return v == w
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

type components []int

func (components components) Cmp(b components) int {
	for i := range max(len(components), len(b)) {
		if diff := fetch(components, i) - fetch(b, i); diff != 0 {
			if diff < 0 {
				return -1
			}
			return 1
		}
	}

	return 0
}
