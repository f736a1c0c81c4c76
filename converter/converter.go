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

// Package converter provides utility functions for converting scan results to standardized
// inventory formats.
package converter

import (
	"fmt"
	"regexp"
	"time"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/msiproducts"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/purl"
	"github.com/google/msiproducts/resolver"
	"github.com/google/uuid"
	"github.com/spdx/tools-golang/spdx/v2/common"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

const (
	// NoAssertion indicates that we don't claim anything about the value of a given field.
	NoAssertion = "NOASSERTION"
	// SPDXRefPrefix is the prefix used in reference IDs in the SPDX document.
	SPDXRefPrefix = "SPDXRef-"
	// SPDXDocumentID is the string identifier used to refer to the SPDX document.
	SPDXDocumentID = "SPDXRef-Document"

	toolName = "msiproducts"
	toolURL  = "https://github.com/google/msiproducts"
)

// CDX property names.
const (
	PropertyProductCode = "msi:product_code"
	PropertyUpgradeCode = "msi:upgrade_code"
	PropertyRawVersion  = "msi:version_string"
)

// spdx_id must only contain letters, numbers, "." and "-"
var spdxIDInvalidCharRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SPDXConfig describes custom settings that should be applied to the generated SPDX file.
type SPDXConfig struct {
	DocumentName      string
	DocumentNamespace string
	Creators          []common.Creator
}

// ToSPDX23 converts the scan results into an SPDX v2.3 document. Every product becomes a package
// contained in a main package named after the upgrade code.
func ToSPDX23(r *msiproducts.ScanResult, c SPDXConfig) *v2_3.Document {
	packages := make([]*v2_3.Package, 0, len(r.Products)+1)

	// Add a main package that contains all other top-level packages.
	mainPackageID := SPDXRefPrefix + "Package-main-" + uuid.New().String()
	packages = append(packages, &v2_3.Package{
		PackageName:           r.UpgradeCode.String(),
		PackageSPDXIdentifier: common.ElementID(mainPackageID),
		PackageVersion:        "0",
		PackageSupplier: &common.Supplier{
			Supplier:     NoAssertion,
			SupplierType: NoAssertion,
		},
		PackageDownloadLocation:   NoAssertion,
		IsFilesAnalyzedTagPresent: false,
	})

	relationships := make([]*v2_3.Relationship, 0, 1+len(r.Products))
	relationships = append(relationships, &v2_3.Relationship{
		RefA:         toDocElementID(SPDXDocumentID),
		RefB:         toDocElementID(mainPackageID),
		Relationship: "DESCRIBES",
	})

	for _, p := range r.Products {
		u := purl.FromProduct(r.UpgradeCode, p)
		pID := SPDXRefPrefix + "Package-" + replaceSPDXIDInvalidChars(u.Name) + "-" + uuid.New().String()

		pkg := &v2_3.Package{
			PackageName:               u.Name,
			PackageSPDXIdentifier:     common.ElementID(pID),
			PackageVersion:            u.Version,
			PackageSupplier:           toSPDXSupplier(p),
			PackageDownloadLocation:   NoAssertion,
			IsFilesAnalyzedTagPresent: false,
			PackageSourceInfo:         fmt.Sprintf("Installed product %v of upgrade code %v", p.ProductCode, r.UpgradeCode),
			PackageExternalReferences: []*v2_3.PackageExternalReference{
				{
					Category: "PACKAGE-MANAGER",
					RefType:  "purl",
					Locator:  u.String(),
				},
			},
		}
		if p.VersionErr != nil {
			pkg.PackageComment = p.VersionErr.Error()
		}
		packages = append(packages, pkg)

		relationships = append(relationships, &v2_3.Relationship{
			RefA:         toDocElementID(mainPackageID),
			RefB:         toDocElementID(pID),
			Relationship: "CONTAINS",
		})
	}

	name := c.DocumentName
	if name == "" {
		name = "msiproducts-generated SPDX"
	}
	namespace := c.DocumentNamespace
	if namespace == "" {
		namespace = "https://spdx.google/" + uuid.New().String()
	}
	creators := []common.Creator{
		{
			CreatorType: "Tool",
			Creator:     toolName,
		},
	}
	creators = append(creators, c.Creators...)

	return &v2_3.Document{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXIdentifier:    "DOCUMENT",
		DocumentName:      name,
		DocumentNamespace: namespace,
		CreationInfo: &v2_3.CreationInfo{
			Creators: creators,
			Created:  time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		},
		Packages:      packages,
		Relationships: relationships,
	}
}

func toSPDXSupplier(p *resolver.ProductEntry) *common.Supplier {
	if publisher := p.Properties[installer.PropertyPublisher]; publisher != "" {
		return &common.Supplier{
			Supplier:     publisher,
			SupplierType: "Organization",
		}
	}
	return &common.Supplier{
		Supplier:     NoAssertion,
		SupplierType: NoAssertion,
	}
}

func replaceSPDXIDInvalidChars(id string) string {
	return spdxIDInvalidCharRe.ReplaceAllString(id, "-")
}

func toDocElementID(id string) common.DocElementID {
	if id == NoAssertion {
		return common.DocElementID{
			SpecialID: NoAssertion,
		}
	}

	return common.DocElementID{
		ElementRefID: common.ElementID(id),
	}
}

// CDXConfig describes custom settings that should be applied to the generated CDX file.
type CDXConfig struct {
	ComponentName    string
	ComponentVersion string
	Authors          []string
}

// ToCDX converts the scan results into a CycloneDX document.
func ToCDX(r *msiproducts.ScanResult, c CDXConfig) *cyclonedx.BOM {
	name := c.ComponentName
	if name == "" {
		name = r.UpgradeCode.String()
	}

	bom := cyclonedx.NewBOM()
	bom.Metadata = &cyclonedx.Metadata{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Component: &cyclonedx.Component{
			Name:    name,
			Version: c.ComponentVersion,
			BOMRef:  uuid.New().String(),
		},
		Tools: &cyclonedx.ToolsChoice{
			Components: &[]cyclonedx.Component{
				{
					Type:    cyclonedx.ComponentTypeApplication,
					Name:    toolName,
					Version: r.Version,
					ExternalReferences: &[]cyclonedx.ExternalReference{
						{
							URL:  toolURL,
							Type: cyclonedx.ERTypeWebsite,
						},
					},
				},
			},
		},
	}
	if len(c.Authors) > 0 {
		authors := make([]cyclonedx.OrganizationalContact, 0, len(c.Authors))
		for _, author := range c.Authors {
			authors = append(authors, cyclonedx.OrganizationalContact{
				Name: author,
			})
		}
		bom.Metadata.Authors = &authors
	}

	comps := make([]cyclonedx.Component, 0, len(r.Products))
	for _, p := range r.Products {
		u := purl.FromProduct(r.UpgradeCode, p)
		props := []cyclonedx.Property{
			{Name: PropertyProductCode, Value: p.ProductCode.String()},
			{Name: PropertyUpgradeCode, Value: r.UpgradeCode.String()},
		}
		if p.RawVersion != "" {
			props = append(props, cyclonedx.Property{Name: PropertyRawVersion, Value: p.RawVersion})
		}
		comps = append(comps, cyclonedx.Component{
			BOMRef:     uuid.New().String(),
			Type:       cyclonedx.ComponentTypeApplication,
			Name:       u.Name,
			Version:    u.Version,
			Publisher:  p.Properties[installer.PropertyPublisher],
			PackageURL: u.String(),
			Properties: &props,
		})
	}
	bom.Components = &comps

	return bom
}
