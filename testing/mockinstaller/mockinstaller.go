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

// Package mockinstaller provides an in-memory implementation of installer.Installer.
package mockinstaller

import (
	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
)

// Product is an installed product known to the mock.
type Product struct {
	Code guid.GUID
	// Properties answered by ProductInfo. A property missing from the map yields
	// ERROR_UNKNOWN_PROPERTY.
	Properties map[installer.Property]string
	// InfoErr, when set, is returned by every ProductInfo call for this product.
	InfoErr error
	// EnumErr, when set, is returned by EnumRelatedProducts at this product's index.
	EnumErr error
}

// MockInstaller holds products per upgrade code.
type MockInstaller struct {
	Families map[guid.GUID][]*Product
	// EnumErr, when set, is returned by EnumRelatedProducts once index reaches EnumErrAt.
	EnumErr   error
	EnumErrAt int

	// EnumCalls counts EnumRelatedProducts calls.
	EnumCalls int
	// Closed counts Close calls.
	Closed int
}

// EnumRelatedProducts returns the index-th product of the family.
func (m *MockInstaller) EnumRelatedProducts(upgradeCode guid.GUID, index int) (guid.GUID, error) {
	m.EnumCalls++
	if m.EnumErr != nil && index >= m.EnumErrAt {
		return guid.Nil, m.EnumErr
	}
	products := m.Families[upgradeCode]
	if index < 0 || index >= len(products) {
		return guid.Nil, installer.NewError("MsiEnumRelatedProducts", installer.ErrorNoMoreItems)
	}
	if p := products[index]; p.EnumErr != nil {
		return guid.Nil, p.EnumErr
	}
	return products[index].Code, nil
}

// ProductInfo returns a property of a product.
func (m *MockInstaller) ProductInfo(product guid.GUID, prop installer.Property) (string, error) {
	for _, products := range m.Families {
		for _, p := range products {
			if p.Code != product {
				continue
			}
			if p.InfoErr != nil {
				return "", p.InfoErr
			}
			if v, ok := p.Properties[prop]; ok {
				return v, nil
			}
			return "", installer.NewError("MsiGetProductInfo", installer.ErrorUnknownProperty)
		}
	}
	return "", installer.NewError("MsiGetProductInfo", installer.ErrorUnknownProduct)
}

// Close records the call.
func (m *MockInstaller) Close() error {
	m.Closed++
	return nil
}

// Opener returns Installer on every Open, or OpenErr when set.
type Opener struct {
	Installer installer.Installer
	OpenErr   error
	// Opened counts Open calls.
	Opened int
}

// NewOpener returns an opener for the given installer.
func NewOpener(i installer.Installer) *Opener {
	return &Opener{Installer: i}
}

// Open returns the installer.
func (o *Opener) Open() (installer.Installer, error) {
	o.Opened++
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	return o.Installer, nil
}

// Version is a shorthand for a product with only a version string.
func Version(code guid.GUID, version string) *Product {
	return &Product{
		Code:       code,
		Properties: map[installer.Property]string{installer.PropertyVersionString: version},
	}
}
