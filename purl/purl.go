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

// Package purl provides functions to code and decode package url according to the spec: https://github.com/package-url/purl-spec
// This package is a convenience wrapper and abstraction layer around an existing open source implementation.
package purl

import (
	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/resolver"
	"github.com/package-url/packageurl-go"
)

// Installed products are reported as generic packages of the Microsoft namespace.
// https://github.com/package-url/purl-spec/blob/master/PURL-TYPES.rst
const (
	// TypeGeneric is a pkg:generic purl.
	TypeGeneric = "generic"
	// NamespaceMicrosoft groups Windows Installer products.
	NamespaceMicrosoft = "microsoft"
)

// Qualifier keys.
const (
	ProductCode = "product_code"
	UpgradeCode = "upgrade_code"
)

// PackageURL is the struct representation of the parts that make a package url.
type PackageURL struct {
	Type       string
	Namespace  string
	Name       string
	Version    string
	Qualifiers Qualifiers
}

// Qualifiers is a slice of key=value pairs, with order preserved as it appears
// in the package URL.
type Qualifiers packageurl.Qualifiers

// QualifiersFromMap constructs a Qualifiers slice from a string map. To get a
// deterministic qualifier order (despite maps not providing any iteration order
// guarantees) the returned Qualifiers are sorted in increasing order of key.
func QualifiersFromMap(mm map[string]string) Qualifiers {
	for key, value := range mm {
		// Empty value strings are invalid qualifiers according to the purl spec
		// so we filter them out.
		if value == "" {
			delete(mm, key)
		}
	}
	return Qualifiers(packageurl.QualifiersFromMap(mm))
}

func (p PackageURL) String() string {
	purl := packageurl.PackageURL{
		Type:       p.Type,
		Namespace:  p.Namespace,
		Name:       p.Name,
		Version:    p.Version,
		Qualifiers: packageurl.Qualifiers(p.Qualifiers),
	}
	return (&purl).String()
}

// FromProduct returns the package url of an installed product. The name is the installed product
// name when it was collected and the product code otherwise. The version is left empty when the
// product has none.
func FromProduct(upgradeCode guid.GUID, p *resolver.ProductEntry) *PackageURL {
	name := p.Properties[installer.PropertyInstalledProductName]
	if name == "" {
		name = p.ProductCode.String()
	}
	var version string
	if p.Version != nil {
		version = p.Version.String()
	}
	return &PackageURL{
		Type:      TypeGeneric,
		Namespace: NamespaceMicrosoft,
		Name:      name,
		Version:   version,
		Qualifiers: QualifiersFromMap(map[string]string{
			ProductCode: p.ProductCode.String(),
			UpgradeCode: upgradeCode.String(),
		}),
	}
}
