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

package guid

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Windows Installer stores GUIDs in the registry in a "packed" form: the hyphens and braces are
// dropped, the first three groups are written in reverse character order and each of the last
// eight bytes has its two hex digits swapped.
//
//	{1D8E6291-B0D5-35EC-8441-6616F567A0F7} -> 1926E8D15D0BCE53481466615F760A7F

// groupLens are the lengths, in hex characters, of the segments of a packed GUID that are
// reversed as a whole. The remainder is processed pairwise.
var groupLens = []int{8, 4, 4}

// Packed returns the packed registry form of g.
func (g GUID) Packed() string {
	return pack(strings.ToUpper(hex.EncodeToString(g[:])))
}

// ParsePacked parses the packed registry form produced by Packed.
func ParsePacked(s string) (GUID, error) {
	if len(s) != packedLen {
		return Nil, fmt.Errorf("%w: packed GUID %q must be %d characters", ErrInvalidFormat, s, packedLen)
	}
	// Packing is an involution, so unpacking is packing again.
	b, err := hex.DecodeString(pack(s))
	if err != nil {
		return Nil, fmt.Errorf("%w: packed GUID %q: %v", ErrInvalidFormat, s, err)
	}
	return FromBytes(b)
}

func pack(plain string) string {
	var sb strings.Builder
	sb.Grow(packedLen)
	i := 0
	for _, n := range groupLens {
		for j := i + n - 1; j >= i; j-- {
			sb.WriteByte(plain[j])
		}
		i += n
	}
	for ; i+1 < len(plain); i += 2 {
		sb.WriteByte(plain[i+1])
		sb.WriteByte(plain[i])
	}
	return strings.ToUpper(sb.String())
}
