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

package semantic

import (
	"fmt"
	"strconv"
)

// convertComponent converts a single version component, rejecting signs, whitespace and values
// that don't fit in an int32.
func convertComponent(str string) (int, error) {
	if str == "" {
		return 0, fmt.Errorf("%w: empty component", ErrInvalidVersion)
	}
	for _, c := range str {
		if !isASCIIDigit(c) {
			return 0, fmt.Errorf("%w: component %q is not a number", ErrInvalidVersion, str)
		}
	}

	n, err := strconv.ParseInt(str, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: component %q is out of range", ErrInvalidVersion, str)
	}

	return int(n), nil
}

func fetch(slice []int, i int) int {
	if len(slice) <= i {
		return -1
	}

	return slice[i]
}

// isASCIIDigit returns true if the given rune is an ASCII digit.
//
// Unicode digits are not considered ASCII digits by this function.
func isASCIIDigit(c rune) bool {
	return c >= 48 && c <= 57
}
