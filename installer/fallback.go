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

package installer

import (
	"errors"

	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/log"
	"go.uber.org/multierr"
)

// VersionFallback is implemented by installers that can answer a query a second time from
// another source. The resolver uses it when the primary answer is not a valid version.
type VersionFallback interface {
	FallbackProductInfo(product guid.GUID, prop Property) (string, error)
}

// NewFallbackOpener returns an opener whose installers enumerate with primary and answer
// ProductInfo from fallback whenever primary fails the query.
// A fallback that cannot be opened is logged and skipped.
func NewFallbackOpener(primary, fallback Opener) Opener {
	return &fallbackOpener{primary: primary, fallback: fallback}
}

type fallbackOpener struct {
	primary  Opener
	fallback Opener
}

func (o *fallbackOpener) Open() (Installer, error) {
	p, err := o.primary.Open()
	if err != nil {
		return nil, err
	}

	f, err := o.fallback.Open()
	if err != nil {
		log.Warnf("Fallback installer unavailable, continuing without it: %v", err)
		return p, nil
	}

	return &fallbackInstaller{primary: p, fallback: f}, nil
}

type fallbackInstaller struct {
	primary  Installer
	fallback Installer
}

func (i *fallbackInstaller) EnumRelatedProducts(upgradeCode guid.GUID, index int) (guid.GUID, error) {
	return i.primary.EnumRelatedProducts(upgradeCode, index)
}

func (i *fallbackInstaller) ProductInfo(product guid.GUID, prop Property) (string, error) {
	value, err := i.primary.ProductInfo(product, prop)
	if err == nil {
		return value, nil
	}
	// Enumeration-only errors are never an answer to a property query.
	if errors.Is(err, ErrNoMoreItems) || errors.Is(err, ErrInvalidProductCode) {
		return "", err
	}

	log.Debugf("%s of %v not available from the primary installer, trying fallback: %v", prop, product, err)
	value, ferr := i.fallback.ProductInfo(product, prop)
	if ferr != nil {
		return "", multierr.Append(err, ferr)
	}
	return value, nil
}

// FallbackProductInfo queries the fallback installer only.
func (i *fallbackInstaller) FallbackProductInfo(product guid.GUID, prop Property) (string, error) {
	return i.fallback.ProductInfo(product, prop)
}

func (i *fallbackInstaller) Close() error {
	return multierr.Combine(i.primary.Close(), i.fallback.Close())
}
