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

package purl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/purl"
	"github.com/google/msiproducts/resolver"
	"github.com/google/msiproducts/semantic"
	"github.com/package-url/packageurl-go"
)

var (
	upgradeCode = guid.MustParse("{26A24AE4-039D-4CA4-87B4-2F64180101F0}")
	productCode = guid.MustParse("{1D8E6291-B0D5-35EC-8441-6616F567A0F7}")
)

func TestFromProduct(t *testing.T) {
	v := semantic.MustParse("8.0.1010.12")
	tests := []struct {
		desc    string
		product *resolver.ProductEntry
		want    string
	}{
		{
			desc: "named_product",
			product: &resolver.ProductEntry{
				ProductCode: productCode,
				Version:     &v,
				Properties: map[installer.Property]string{
					installer.PropertyInstalledProductName: "Java 8 Update 101",
				},
			},
			want: "pkg:generic/microsoft/Java%208%20Update%20101@8.0.1010.12?product_code=%7B1D8E6291-B0D5-35EC-8441-6616F567A0F7%7D&upgrade_code=%7B26A24AE4-039D-4CA4-87B4-2F64180101F0%7D",
		},
		{
			desc:    "unnamed_product_uses_product_code",
			product: &resolver.ProductEntry{ProductCode: productCode, Version: &v},
			want:    "pkg:generic/microsoft/%7B1D8E6291-B0D5-35EC-8441-6616F567A0F7%7D@8.0.1010.12?product_code=%7B1D8E6291-B0D5-35EC-8441-6616F567A0F7%7D&upgrade_code=%7B26A24AE4-039D-4CA4-87B4-2F64180101F0%7D",
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got := purl.FromProduct(upgradeCode, tc.product)
			if got.String() != tc.want {
				t.Errorf("FromProduct(%v).String() = %q, want %q", tc.product.ProductCode, got.String(), tc.want)
			}

			parsed, err := packageurl.FromString(got.String())
			if err != nil {
				t.Fatalf("packageurl.FromString(%q) unexpected error: %v", got.String(), err)
			}
			roundTrip := purl.PackageURL{
				Type:       parsed.Type,
				Namespace:  parsed.Namespace,
				Name:       parsed.Name,
				Version:    parsed.Version,
				Qualifiers: purl.Qualifiers(parsed.Qualifiers),
			}
			if diff := cmp.Diff(*got, roundTrip); diff != "" {
				t.Errorf("packageurl.FromString(%q) returned diff (-want +got):\n%s", got.String(), diff)
			}
		})
	}
}

func TestFromProduct_NoVersion(t *testing.T) {
	got := purl.FromProduct(upgradeCode, &resolver.ProductEntry{ProductCode: productCode, RawVersion: "latest"})
	if got.Version != "" {
		t.Errorf("FromProduct().Version = %q, want empty", got.Version)
	}
	want := map[string]string{
		purl.ProductCode: productCode.String(),
		purl.UpgradeCode: upgradeCode.String(),
	}
	if diff := cmp.Diff(want, packageurl.Qualifiers(got.Qualifiers).Map()); diff != "" {
		t.Errorf("FromProduct().Qualifiers returned diff (-want +got):\n%s", diff)
	}
}
