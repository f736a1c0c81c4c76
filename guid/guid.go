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

// Package guid provides the 128-bit identifier used by Windows Installer for upgrade codes and
// product codes.
package guid

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// canonicalLen is the length of "{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}".
	canonicalLen = 38
	// packedLen is the length of the packed (registry) form.
	packedLen = 32
)

// ErrInvalidFormat is returned when a string is not a well-formed identifier.
var ErrInvalidFormat = errors.New("invalid GUID format")

// GUID is a 128-bit globally unique identifier. The bytes are stored in the order in which they
// appear in the canonical string form. GUID is a value type: copies are independent and two
// GUIDs are equal iff their bytes are equal.
type GUID [16]byte

// Nil is the all-zero GUID.
var Nil GUID

// Parse parses the canonical braced form "{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}".
// Hex digits may be in either case. No surrounding whitespace is accepted.
func Parse(s string) (GUID, error) {
	if len(s) != canonicalLen || s[0] != '{' || s[canonicalLen-1] != '}' {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	inner := s[1 : canonicalLen-1]
	// uuid.Parse also accepts other layouts; only the hyphenated 36-char one reaches it here.
	u, err := uuid.Parse(inner)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	return GUID(u), nil
}

// MustParse is like Parse but panics if s is not a valid GUID.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromBytes copies a GUID out of exactly 16 bytes.
func FromBytes(b []byte) (GUID, error) {
	var g GUID
	if len(b) != len(g) {
		return Nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidFormat, len(g), len(b))
	}
	copy(g[:], b)
	return g, nil
}

// String returns the canonical uppercase braced form.
func (g GUID) String() string {
	return "{" + strings.ToUpper(uuid.UUID(g).String()) + "}"
}

// Bytes returns a copy of the raw bytes.
func (g GUID) Bytes() []byte {
	b := make([]byte, len(g))
	copy(b, g[:])
	return b
}

// Equal reports whether g and other hold the same bytes.
func (g GUID) Equal(other GUID) bool {
	return g == other
}

// Compare orders GUIDs byte-wise. The result is 0 if g == other, -1 if g < other and +1 if
// g > other.
func (g GUID) Compare(other GUID) int {
	return bytes.Compare(g[:], other[:])
}

// IsNil reports whether g is the zero GUID.
func (g GUID) IsNil() bool {
	return g == Nil
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
