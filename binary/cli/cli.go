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

// Package cli defines the structures to store the CLI flags used by the msiproducts binary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/msiproducts"
	"github.com/google/msiproducts/binary/cdx"
	"github.com/google/msiproducts/binary/spdx"
	"github.com/google/msiproducts/converter"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/installer/msi"
	"github.com/google/msiproducts/installer/reginstaller"
	"github.com/google/msiproducts/log"
	"github.com/google/msiproducts/stats"
	"github.com/spdx/tools-golang/spdx/v2/common"
)

// Array is a type to be passed to flag.Var that supports arrays passed as repeated flags,
// e.g. ./msiproducts -o json=out.json -o spdx23-json=out.spdx.json
type Array []string

func (i *Array) String() string {
	return strings.Join(*i, ",")
}

// Set gets called whenever a new instance of a flag is read during CLI arg parsing.
// For example, in the case of -o foo -o bar the library will call arr.Set("foo") then arr.Set("bar").
func (i *Array) Set(value string) error {
	*i = append(*i, strings.TrimSpace(value))
	return nil
}

// Get returns the underlying []string value stored by this flag struct.
func (i *Array) Get() any {
	return i
}

// Flags contains a field for all the cli flags that can be set.
type Flags struct {
	// Args are the positional arguments. The first one is the upgrade code.
	Args                  []string
	Output                Array
	OfflineHive           string
	NoRegistryFallback    bool
	Properties            string
	LogDir                string
	SPDXDocumentName      string
	SPDXDocumentNamespace string
	SPDXCreators          string
	CDXComponentName      string
	CDXComponentVersion   string
	CDXAuthors            string
	Verbose               bool
	PrintVersion          bool

	// Not settable from the command line.

	// Optional: Opener replaces the installer selected by the flags.
	Opener installer.Opener
	// Optional: stats allows to enter a metric hook. If left nil, no metrics will be recorded.
	Stats stats.Collector
}

var supportedOutputFormats = []string{
	"json", "yaml", "spdx23-tag-value", "spdx23-json", "spdx23-yaml", "cdx-json", "cdx-xml",
}

// ValidateFlags validates the passed command line flags.
func ValidateFlags(flags *Flags) error {
	if flags.OfflineHive != "" && flags.NoRegistryFallback {
		return errors.New("--offline-hive and --no-registry-fallback cannot be used together")
	}
	if err := validateOutput(flags.Output); err != nil {
		return fmt.Errorf("--o %w", err)
	}
	if _, err := parseProperties(flags.Properties); err != nil {
		return fmt.Errorf("--properties: %w", err)
	}
	if err := validateCreators(flags.SPDXCreators); err != nil {
		return fmt.Errorf("--spdx-creators: %w", err)
	}
	return nil
}

func validateOutput(output []string) error {
	for _, item := range output {
		o := strings.Split(item, "=")
		if len(o) != 2 || o[1] == "" {
			return errors.New("invalid output format, should follow a format like -o json=result.json -o spdx23-json=result.spdx.json")
		}
		oFormat := o[0]
		if !slices.Contains(supportedOutputFormats, oFormat) {
			return fmt.Errorf("output format %q not recognized, supported formats are %v", oFormat, supportedOutputFormats)
		}
	}
	return nil
}

func parseProperties(arg string) ([]installer.Property, error) {
	if arg == "" {
		return nil, nil
	}
	var props []installer.Property
	for _, item := range strings.Split(arg, ",") {
		if item == "" {
			return nil, errors.New("list item cannot be left empty")
		}
		p, err := installer.ParseProperty(item)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(props, p) {
			props = append(props, p)
		}
	}
	return props, nil
}

func validateCreators(arg string) error {
	if arg == "" {
		return nil
	}
	for _, item := range strings.Split(arg, ",") {
		if c := strings.Split(item, ":"); len(c) != 2 || c[0] == "" || c[1] == "" {
			return fmt.Errorf("invalid creator %q, should follow a format like creatortype1:creator1", item)
		}
	}
	return nil
}

// UpgradeCode returns the upgrade code argument, or an empty string if none was passed.
func (f *Flags) UpgradeCode() string {
	if len(f.Args) == 0 {
		return ""
	}
	return f.Args[0]
}

// GetScanConfig constructs a scan config from the provided CLI flags.
func (f *Flags) GetScanConfig() (*msiproducts.ScanConfig, error) {
	props, err := parseProperties(f.Properties)
	if err != nil {
		return nil, err
	}
	// SBOM outputs name products and their suppliers.
	if f.hasSBOMOutput() {
		for _, p := range []installer.Property{installer.PropertyInstalledProductName, installer.PropertyPublisher} {
			if !slices.Contains(props, p) {
				props = append(props, p)
			}
		}
	}

	return &msiproducts.ScanConfig{
		Opener:     f.opener(),
		Properties: props,
		Stats:      f.Stats,
	}, nil
}

func (f *Flags) opener() installer.Opener {
	switch {
	case f.Opener != nil:
		return f.Opener
	case f.OfflineHive != "":
		log.Infof("Reading installed products from hive %s", f.OfflineHive)
		return reginstaller.NewOffline(f.OfflineHive)
	case f.NoRegistryFallback:
		return msi.NewOpener()
	default:
		return installer.NewFallbackOpener(msi.NewOpener(), reginstaller.NewDefault())
	}
}

func (f *Flags) hasSBOMOutput() bool {
	for _, item := range f.Output {
		oFormat, _, _ := strings.Cut(item, "=")
		if spdx.IsFormat(oFormat) || cdx.IsFormat(oFormat) {
			return true
		}
	}
	return false
}

// GetSPDXConfig creates an SPDXConfig struct based on the CLI flags.
func (f *Flags) GetSPDXConfig() converter.SPDXConfig {
	creators := []common.Creator{}
	if len(f.SPDXCreators) > 0 {
		for _, item := range strings.Split(f.SPDXCreators, ",") {
			c := strings.Split(item, ":")
			cType := c[0]
			cName := c[1]
			creators = append(creators, common.Creator{
				CreatorType: cType,
				Creator:     cName,
			})
		}
	}
	return converter.SPDXConfig{
		DocumentName:      f.SPDXDocumentName,
		DocumentNamespace: f.SPDXDocumentNamespace,
		Creators:          creators,
	}
}

// GetCDXConfig creates an CDXConfig struct based on the CLI flags.
func (f *Flags) GetCDXConfig() converter.CDXConfig {
	var authors []string
	if f.CDXAuthors != "" {
		authors = strings.Split(f.CDXAuthors, ",")
	}
	return converter.CDXConfig{
		ComponentName:    f.CDXComponentName,
		ComponentVersion: f.CDXComponentVersion,
		Authors:          authors,
	}
}

// WriteText prints one "<product>: <version>" line for every product whose version is known.
func WriteText(w io.Writer, result *msiproducts.ScanResult) error {
	for _, p := range result.Products {
		if p.Version == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%v: %v\n", p.ProductCode, p.Version); err != nil {
			return err
		}
	}
	return nil
}

// WriteScanResults writes scan results to files specified by the CLI flags.
func (f *Flags) WriteScanResults(result *msiproducts.ScanResult) error {
	collector := f.Stats
	if collector == nil {
		collector = stats.NoopCollector{}
	}

	for _, item := range f.Output {
		oFormat, oPath, _ := strings.Cut(item, "=")
		log.Infof("Writing scan results to %s", oPath)

		var n int
		var err error
		switch {
		case oFormat == "json" || oFormat == "yaml":
			n, err = writeResult(result, oPath, oFormat)
		case spdx.IsFormat(oFormat):
			doc := converter.ToSPDX23(result, f.GetSPDXConfig())
			n, err = spdx.Write23(doc, oPath, oFormat)
		case cdx.IsFormat(oFormat):
			doc := converter.ToCDX(result, f.GetCDXConfig())
			n, err = cdx.Write(doc, oPath, oFormat)
		default:
			err = fmt.Errorf("output format %q not recognized", oFormat)
		}
		collector.AfterResultsExported("file", n, err)
		if err != nil {
			return err
		}
	}
	return nil
}
