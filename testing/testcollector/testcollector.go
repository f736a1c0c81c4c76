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

// Package testcollector provides an implementation of stats.Collector that
// stores recorded metrics for verification in tests.
package testcollector

import (
	"time"

	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/stats"
)

// ResolveStats is one recorded AfterResolve call.
type ResolveStats struct {
	UpgradeCode guid.GUID
	Products    int
	Err         error
}

// Collector implements the stats.Collector interface and simply stores metrics.
type Collector struct {
	stats.NoopCollector
	enumerated    []guid.GUID
	versionErrors map[guid.GUID]error
	resolves      []ResolveStats
	exportedBytes map[string]int
}

// New returns a new test Collector with maps initialized.
func New() *Collector {
	return &Collector{
		versionErrors: make(map[guid.GUID]error),
		exportedBytes: make(map[string]int),
	}
}

// AfterProductEnumerated stores the enumerated product codes in order.
func (c *Collector) AfterProductEnumerated(_ guid.GUID, _ int, product guid.GUID) {
	c.enumerated = append(c.enumerated, product)
}

// AfterVersionLookup stores the lookup outcome per product.
func (c *Collector) AfterVersionLookup(product guid.GUID, _ time.Duration, err error) {
	c.versionErrors[product] = err
}

// AfterResolve stores the outcome of a resolve.
func (c *Collector) AfterResolve(upgradeCode guid.GUID, _ time.Duration, products int, err error) {
	c.resolves = append(c.resolves, ResolveStats{UpgradeCode: upgradeCode, Products: products, Err: err})
}

// AfterResultsExported accumulates the exported bytes per destination.
func (c *Collector) AfterResultsExported(destination string, bytes int, _ error) {
	c.exportedBytes[destination] += bytes
}

// Enumerated returns the product codes reported through AfterProductEnumerated.
func (c *Collector) Enumerated() []guid.GUID {
	return c.enumerated
}

// VersionLookup reports whether a version lookup was recorded for a product and the error it
// recorded.
func (c *Collector) VersionLookup(product guid.GUID) (bool, error) {
	err, ok := c.versionErrors[product]
	return ok, err
}

// Resolves returns the recorded AfterResolve calls.
func (c *Collector) Resolves() []ResolveStats {
	return c.resolves
}

// ExportedBytes returns the number of bytes exported to a destination.
func (c *Collector) ExportedBytes(destination string) int {
	return c.exportedBytes[destination]
}
