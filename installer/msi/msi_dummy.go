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

// Package msi queries the Windows Installer through msi.dll.
package msi

import (
	"errors"

	"github.com/google/msiproducts/installer"
)

// Opener opens handles on the live Windows Installer.
type Opener struct{}

// NewOpener returns an Opener for msi.dll.
func NewOpener() *Opener { return &Opener{} }

// Open is not supported outside of Windows.
func (o *Opener) Open() (installer.Installer, error) {
	return nil, errors.New("msi.dll is only available on Windows; use an offline hive instead")
}
