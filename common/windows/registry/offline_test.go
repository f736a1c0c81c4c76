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

package registry

import (
	"path/filepath"
	"testing"
)

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		desc string
		data []byte
		want string
	}{
		{
			desc: "nul_terminated",
			data: []byte{'1', 0, '.', 0, '2', 0, 0, 0},
			want: "1.2",
		},
		{
			desc: "not_terminated",
			data: []byte{'A', 0, 'b', 0},
			want: "Ab",
		},
		{
			desc: "non_ascii",
			data: []byte{0xe9, 0x00, 0x00, 0x00},
			want: "é",
		},
		{
			desc: "empty",
			data: nil,
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := decodeUTF16(tc.data)
			if err != nil {
				t.Fatalf("decodeUTF16(%v) returned an unexpected error: %v", tc.data, err)
			}
			if got != tc.want {
				t.Errorf("decodeUTF16(%v) = %q, want %q", tc.data, got, tc.want)
			}
		})
	}
}

func TestOfflineOpener_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SOFTWARE")
	if _, err := NewOfflineOpener(path).Open(); err == nil {
		t.Errorf("NewOfflineOpener(%q).Open() succeeded, want error", path)
	}
}
