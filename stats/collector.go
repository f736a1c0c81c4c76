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

// Package stats contains interfaces and utilities relating to the collection of
// statistics from product resolution.
package stats

import (
	"time"

	"github.com/google/msiproducts/guid"
)

// Collector is a component which is notified when certain events occur. It can be implemented with
// different metric backends to enable monitoring of product resolution.
type Collector interface {
	// AfterProductEnumerated is called for every product the installer reports for a family.
	AfterProductEnumerated(upgradeCode guid.GUID, index int, product guid.GUID)

	// AfterVersionLookup is called after the version of a product was queried. err is nil when a
	// version was found and parsed.
	AfterVersionLookup(product guid.GUID, runtime time.Duration, err error)

	// AfterResolve is called once a family has been fully enumerated or the enumeration failed.
	AfterResolve(upgradeCode guid.GUID, runtime time.Duration, products int, err error)

	// AfterResultsExported is called after results have been exported. destination should merely be
	// a category of where the result was written to (e.g. 'file', 'stdout'), not the precise location.
	AfterResultsExported(destination string, bytes int, err error)
}

// NoopCollector implements Collector by doing nothing.
type NoopCollector struct{}

// AfterProductEnumerated implements Collector by doing nothing.
func (c NoopCollector) AfterProductEnumerated(upgradeCode guid.GUID, index int, product guid.GUID) {}

// AfterVersionLookup implements Collector by doing nothing.
func (c NoopCollector) AfterVersionLookup(product guid.GUID, runtime time.Duration, err error) {}

// AfterResolve implements Collector by doing nothing.
func (c NoopCollector) AfterResolve(upgradeCode guid.GUID, runtime time.Duration, products int, err error) {
}

// AfterResultsExported implements Collector by doing nothing.
func (c NoopCollector) AfterResultsExported(destination string, bytes int, err error) {}
