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

// Package installer defines the read-only query surface of the Windows Installer product
// registry that the resolver consumes, along with the installer's status codes and product
// property names.
package installer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/msiproducts/guid"
)

// Opener opens an installer handle. Each resolve opens its own handle and closes it when done.
type Opener interface {
	Open() (Installer, error)
}

// Installer answers the two queries needed to inventory a product family.
type Installer interface {
	// EnumRelatedProducts returns the product at the zero-based index among the products
	// registered with the given upgrade code. It returns an error matching ErrNoMoreItems once
	// index is past the last product, or one matching ErrInvalidProductCode when the product at
	// index is not a valid GUID; later indexes may still hold valid products.
	EnumRelatedProducts(upgradeCode guid.GUID, index int) (guid.GUID, error)

	// ProductInfo returns the value of a property of an installed product.
	ProductInfo(product guid.GUID, prop Property) (string, error)

	// Close releases the handle.
	Close() error
}

// Windows Installer status codes.
const (
	ErrorSuccess          uint32 = 0
	ErrorInvalidParameter uint32 = 87
	ErrorMoreData         uint32 = 234
	ErrorNoMoreItems      uint32 = 259
	ErrorUnknownProduct   uint32 = 1605
	ErrorUnknownProperty  uint32 = 1608
	ErrorBadConfiguration uint32 = 1610
)

var (
	// ErrNoMoreItems signals the end of an enumeration.
	ErrNoMoreItems = errors.New("no more items")
	// ErrUnknownProduct is returned when a product is not registered.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrUnknownProperty is returned when a product does not have the requested property.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidProductCode is returned when the installer reports a product code that is not a
	// GUID.
	ErrInvalidProductCode = errors.New("invalid product code")
)

// Error is a non-success status code returned by an installer query.
type Error struct {
	// Op is the query that failed, e.g. "MsiEnumRelatedProducts".
	Op   string
	Code uint32
}

// NewError returns an *Error for the given operation and status code.
func NewError(op string, code uint32) *Error {
	return &Error{Op: op, Code: code}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: status %d (0x%X)", e.Op, e.Code, e.Code)
}

// Is matches the sentinel errors of this package against the status code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNoMoreItems:
		return e.Code == ErrorNoMoreItems
	case ErrUnknownProduct:
		return e.Code == ErrorUnknownProduct
	case ErrUnknownProperty:
		return e.Code == ErrorUnknownProperty
	}
	return false
}

// Property is the name of a product property understood by MsiGetProductInfo.
type Property string

// Product properties.
// https://learn.microsoft.com/en-us/windows/win32/api/msi/nf-msi-msigetproductinfow
const (
	PropertyVersionString        Property = "VersionString"
	PropertyInstalledProductName Property = "InstalledProductName"
	PropertyPublisher            Property = "Publisher"
	PropertyInstallDate          Property = "InstallDate"
	PropertyInstallLocation      Property = "InstallLocation"
	PropertyInstallSource        Property = "InstallSource"
	PropertyLocalPackage         Property = "LocalPackage"
	PropertyHelpLink             Property = "HelpLink"
	PropertyHelpTelephone        Property = "HelpTelephone"
	PropertyURLInfoAbout         Property = "URLInfoAbout"
	PropertyURLUpdateInfo        Property = "URLUpdateInfo"
	PropertyVersionMajor         Property = "VersionMajor"
	PropertyVersionMinor         Property = "VersionMinor"
	PropertyLanguage             Property = "Language"
)

// Properties lists every supported property.
var Properties = []Property{
	PropertyVersionString,
	PropertyInstalledProductName,
	PropertyPublisher,
	PropertyInstallDate,
	PropertyInstallLocation,
	PropertyInstallSource,
	PropertyLocalPackage,
	PropertyHelpLink,
	PropertyHelpTelephone,
	PropertyURLInfoAbout,
	PropertyURLUpdateInfo,
	PropertyVersionMajor,
	PropertyVersionMinor,
	PropertyLanguage,
}

// ParseProperty returns the property with the given name, ignoring case.
func ParseProperty(name string) (Property, error) {
	for _, p := range Properties {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown installer property %q", name)
}
