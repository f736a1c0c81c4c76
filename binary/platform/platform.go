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

// Package platform provides platform-specific functionality.
package platform

import (
	"os"

	"github.com/google/msiproducts/log"
)

// LogDir returns the directory log files are written to by default: the current working
// directory. It returns an empty string when the working directory cannot be determined, in which
// case the logger picks its own default.
func LogDir() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Debugf("Working directory unavailable, using the default log directory: %v", err)
		return ""
	}
	return wd
}
