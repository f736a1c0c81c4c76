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

//go:build !windows

package registry

import "errors"

// LiveOpener is an opener for the live registry. Outside of Windows there is no live registry
// and Open always fails; use an offline hive instead.
type LiveOpener struct{}

// NewLiveOpener creates a new LiveOpener.
func NewLiveOpener() *LiveOpener {
	return &LiveOpener{}
}

// Open fails: the live registry only exists on Windows.
func (o *LiveOpener) Open() (Registry, error) {
	return nil, errors.New("live registry only supported on Windows")
}
