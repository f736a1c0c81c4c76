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

//go:build windows

// Package msi queries the Windows Installer through msi.dll.
package msi

import (
	"fmt"
	"unsafe"

	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
	"golang.org/x/sys/windows"
)

var (
	msiDLL                      = windows.NewLazySystemDLL("msi.dll")
	procMsiEnumRelatedProductsW = msiDLL.NewProc("MsiEnumRelatedProductsW")
	procMsiGetProductInfoW      = msiDLL.NewProc("MsiGetProductInfoW")
)

const (
	// guidBufLen holds a braced GUID plus the NUL terminator.
	guidBufLen = 39
	// initialValueBufLen is the first buffer size tried by MsiGetProductInfoW. Larger values are
	// retried with the size reported through ERROR_MORE_DATA.
	initialValueBufLen = 64
)

// Opener opens handles on the live Windows Installer.
type Opener struct{}

// NewOpener returns an Opener for msi.dll.
func NewOpener() *Opener { return &Opener{} }

// Open loads msi.dll and resolves the two queries used by the resolver.
func (o *Opener) Open() (installer.Installer, error) {
	for _, p := range []*windows.LazyProc{procMsiEnumRelatedProductsW, procMsiGetProductInfoW} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("cannot find %s in msi.dll: %w", p.Name, err)
		}
	}
	return &Installer{}, nil
}

// Installer wraps the msi.dll product queries.
type Installer struct{}

// EnumRelatedProducts wraps MsiEnumRelatedProductsW.
//
// https://learn.microsoft.com/en-us/windows/win32/api/msi/nf-msi-msienumrelatedproductsw
//
//	UINT MsiEnumRelatedProductsW(
//	  [in]  LPCWSTR lpUpgradeCode,
//	  [in]  DWORD   dwReserved,
//	  [in]  DWORD   iProductIndex,
//	  [out] LPWSTR  lpProductBuf
//	);
func (i *Installer) EnumRelatedProducts(upgradeCode guid.GUID, index int) (guid.GUID, error) {
	code, err := windows.UTF16PtrFromString(upgradeCode.String())
	if err != nil {
		return guid.Nil, err
	}

	buf := make([]uint16, guidBufLen)
	ret, _, _ := procMsiEnumRelatedProductsW.Call(
		uintptr(unsafe.Pointer(code)),
		0,
		uintptr(index),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if uint32(ret) != installer.ErrorSuccess {
		return guid.Nil, installer.NewError("MsiEnumRelatedProducts", uint32(ret))
	}

	s := windows.UTF16ToString(buf)
	product, err := guid.Parse(s)
	if err != nil {
		return guid.Nil, fmt.Errorf("%w: MsiEnumRelatedProducts returned %q: %w", installer.ErrInvalidProductCode, s, err)
	}
	return product, nil
}

// ProductInfo wraps MsiGetProductInfoW.
//
// https://learn.microsoft.com/en-us/windows/win32/api/msi/nf-msi-msigetproductinfow
//
//	UINT MsiGetProductInfoW(
//	  [in]      LPCWSTR szProduct,
//	  [in]      LPCWSTR szAttribute,
//	  [out]     LPWSTR  lpValueBuf,
//	  [in, out] LPDWORD pcchValueBuf
//	);
func (i *Installer) ProductInfo(product guid.GUID, prop installer.Property) (string, error) {
	p, err := windows.UTF16PtrFromString(product.String())
	if err != nil {
		return "", err
	}
	attr, err := windows.UTF16PtrFromString(string(prop))
	if err != nil {
		return "", err
	}

	size := uint32(initialValueBufLen)
	for attempt := 0; attempt < 2; attempt++ {
		buf := make([]uint16, size)
		n := size
		ret, _, _ := procMsiGetProductInfoW.Call(
			uintptr(unsafe.Pointer(p)),
			uintptr(unsafe.Pointer(attr)),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&n)),
		)
		switch uint32(ret) {
		case installer.ErrorSuccess:
			return windows.UTF16ToString(buf[:n]), nil
		case installer.ErrorMoreData:
			// n excludes the terminating NUL.
			size = n + 1
		default:
			return "", installer.NewError("MsiGetProductInfo", uint32(ret))
		}
	}

	return "", installer.NewError("MsiGetProductInfo", installer.ErrorMoreData)
}

// Close is a no-op: the queries do not hold handles between calls.
func (i *Installer) Close() error {
	return nil
}
