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

// Package msiproducts lists the Windows Installer products that share an upgrade code,
// together with their installed versions.
package msiproducts

import (
	"context"
	"errors"
	"time"

	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/log"
	"github.com/google/msiproducts/resolver"
	"github.com/google/msiproducts/stats"
	"github.com/google/msiproducts/version"
)

var errNoOpener = errors.New("no installer opener specified")

// ScanConfig stores the config settings of a scan run.
type ScanConfig struct {
	// Opener opens the installer the products are read from.
	Opener installer.Opener
	// Optional: Properties to collect for every product in addition to the version.
	Properties []installer.Property
	// Optional: stats allows to enter a metric hook. If left nil, no metrics will be recorded.
	Stats stats.Collector
	// Optional: Logger used by the resolver instead of the global one.
	Logger log.Logger
}

// ScanResult stores the results of a scan.
type ScanResult struct {
	Version     string
	StartTime   time.Time
	EndTime     time.Time
	UpgradeCode guid.GUID
	// Products in the order the installer enumerated them.
	Products []*resolver.ProductEntry
}

// Scan resolves the products installed for upgradeCode.
func Scan(ctx context.Context, upgradeCode guid.GUID, cfg *ScanConfig) (*ScanResult, error) {
	if cfg == nil || cfg.Opener == nil {
		return nil, errNoOpener
	}

	sr := &ScanResult{
		Version:     version.ToolVersion,
		StartTime:   time.Now(),
		UpgradeCode: upgradeCode,
	}
	r := resolver.New(resolver.Configuration{
		Opener:     cfg.Opener,
		Properties: cfg.Properties,
		Stats:      cfg.Stats,
		Logger:     cfg.Logger,
	})

	products, err := r.Resolve(ctx, upgradeCode)
	sr.EndTime = time.Now()
	if err != nil {
		return nil, err
	}
	sr.Products = products
	return sr, nil
}
