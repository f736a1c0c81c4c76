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

// Package resolver lists the products installed for an upgrade code together with their
// versions.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/log"
	"github.com/google/msiproducts/semantic"
	"github.com/google/msiproducts/stats"
)

var (
	// ErrEnumerationFailed is matched by errors returned when the installer fails while listing
	// the products of a family.
	ErrEnumerationFailed = errors.New("product enumeration failed")
	// ErrVersionUnavailable is wrapped by ProductEntry.VersionErr.
	ErrVersionUnavailable = errors.New("version unavailable")
)

// EnumerationError is returned by Resolve when the installer reports an error other than the end
// of the enumeration.
type EnumerationError struct {
	UpgradeCode guid.GUID
	Index       int
	Err         error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("enumerating products of %v failed at index %d: %v", e.UpgradeCode, e.Index, e.Err)
}

// Is reports whether target is ErrEnumerationFailed.
func (e *EnumerationError) Is(target error) bool {
	return target == ErrEnumerationFailed
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// ProductEntry is one installed product of a family.
type ProductEntry struct {
	ProductCode guid.GUID
	// Version is nil when the version could not be read or parsed.
	Version *semantic.Version
	// RawVersion is the version string reported by the installer, if any.
	RawVersion string
	// VersionErr explains why Version is nil. It wraps ErrVersionUnavailable.
	VersionErr error
	// Properties holds the additionally requested properties that were found.
	Properties map[installer.Property]string
}

// Configuration for the resolver.
type Configuration struct {
	Opener installer.Opener
	// Optional: Properties to read for every product in addition to the version.
	Properties []installer.Property
	// Optional: stats allows to enter a metric hook. If left nil, no metrics will be recorded.
	Stats stats.Collector
	// Optional: Logger used instead of the global one.
	Logger log.Logger
}

// Resolver resolves upgrade codes.
type Resolver struct {
	opener     installer.Opener
	properties []installer.Property
	stats      stats.Collector
	logger     log.Logger
}

// New returns a Resolver for the given configuration.
func New(cfg Configuration) *Resolver {
	r := &Resolver{
		opener:     cfg.Opener,
		properties: cfg.Properties,
		stats:      cfg.Stats,
		logger:     cfg.Logger,
	}
	if r.stats == nil {
		r.stats = stats.NoopCollector{}
	}
	if r.logger == nil {
		r.logger = log.Current()
	}
	return r
}

// Resolve returns every product installed for upgradeCode, in the order the installer reports
// them. Products whose version cannot be determined are still returned, with a nil Version.
func (r *Resolver) Resolve(ctx context.Context, upgradeCode guid.GUID) (products []*ProductEntry, err error) {
	start := time.Now()
	defer func() {
		r.stats.AfterResolve(upgradeCode, time.Since(start), len(products), err)
	}()

	if r.opener == nil {
		return nil, errors.New("resolver: no installer opener configured")
	}
	inst, err := r.opener.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open installer: %w", err)
	}
	defer func() {
		if cerr := inst.Close(); cerr != nil {
			r.logger.Warnf("failed to close installer: %v", cerr)
		}
	}()

	products = []*ProductEntry{}
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		product, err := inst.EnumRelatedProducts(upgradeCode, index)
		if errors.Is(err, installer.ErrNoMoreItems) {
			break
		}
		if errors.Is(err, installer.ErrInvalidProductCode) {
			r.logger.Warnf("%v: skipping product %d: %v", upgradeCode, index, err)
			continue
		}
		if err != nil {
			return nil, &EnumerationError{UpgradeCode: upgradeCode, Index: index, Err: err}
		}
		r.stats.AfterProductEnumerated(upgradeCode, index, product)
		r.logger.Debugf("%v: product %d is %v", upgradeCode, index, product)

		products = append(products, r.describe(inst, product))
	}

	return products, nil
}

func (r *Resolver) describe(inst installer.Installer, product guid.GUID) *ProductEntry {
	entry := &ProductEntry{ProductCode: product}

	start := time.Now()
	raw, err := inst.ProductInfo(product, installer.PropertyVersionString)
	if err != nil {
		entry.VersionErr = fmt.Errorf("%w: %w", ErrVersionUnavailable, err)
		r.logger.Infof("failed to get version for %v: %v", product, err)
	} else {
		entry.RawVersion = raw
		v, perr := semantic.Parse(raw)
		if perr != nil {
			v, perr = r.retryVersion(inst, entry, perr)
		}
		if perr != nil {
			entry.VersionErr = fmt.Errorf("%w: %w", ErrVersionUnavailable, perr)
			r.logger.Infof("failed to get version for %v: %v", product, perr)
		} else {
			entry.Version = &v
		}
	}
	r.stats.AfterVersionLookup(product, time.Since(start), entry.VersionErr)

	for _, prop := range r.properties {
		if prop == installer.PropertyVersionString {
			continue
		}
		value, err := inst.ProductInfo(product, prop)
		if err != nil {
			r.logger.Debugf("%v has no %s: %v", product, prop, err)
			continue
		}
		if entry.Properties == nil {
			entry.Properties = make(map[installer.Property]string)
		}
		entry.Properties[prop] = value
	}

	return entry
}

// retryVersion asks the installer's fallback source for a version when the primary one is not
// parsable. The original parse error is kept if the fallback has nothing better.
func (r *Resolver) retryVersion(inst installer.Installer, entry *ProductEntry, perr error) (semantic.Version, error) {
	fb, ok := inst.(installer.VersionFallback)
	if !ok {
		return semantic.Version{}, perr
	}
	raw, err := fb.FallbackProductInfo(entry.ProductCode, installer.PropertyVersionString)
	if err != nil {
		r.logger.Debugf("fallback has no version for %v: %v", entry.ProductCode, err)
		return semantic.Version{}, perr
	}
	v, err := semantic.Parse(raw)
	if err != nil {
		r.logger.Debugf("fallback version %q of %v is not valid: %v", raw, entry.ProductCode, err)
		return semantic.Version{}, perr
	}
	entry.RawVersion = raw
	return v, nil
}
