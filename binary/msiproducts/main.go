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

// The msiproducts command prints the Windows Installer products registered under an upgrade
// code, one "<product code>: <version>" line per product.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/google/msiproducts/binary/cli"
	"github.com/google/msiproducts/binary/runner"
	"github.com/google/msiproducts/log"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags, err := parseFlags(args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Errorf("Error parsing CLI args: %v", err)
		return 1
	}
	return runner.Run(flags, stdout)
}

func parseFlags(args []string) (*cli.Flags, error) {
	fs := flag.NewFlagSet("msiproducts", flag.ContinueOnError)
	var output cli.Array
	fs.Var(&output, "o", "The path of the outputs in various formats, e.g. -o json=result.json -o spdx23-json=result.spdx.json -o cdx-json=result.cyclonedx.json")
	offlineHive := fs.String("offline-hive", "", "Path to an offline SOFTWARE registry hive to read the installed products from instead of the live installer")
	noRegistryFallback := fs.Bool("no-registry-fallback", false, "Don't read versions from the registry when the Windows Installer doesn't know them")
	properties := fs.String("properties", "", "Comma-separated list of additional installer properties to collect, e.g. InstalledProductName,Publisher")
	logDir := fs.String("log-dir", "", "Directory of the log file. Defaults to the current working directory")
	spdxDocumentName := fs.String("spdx-document-name", "", "The 'name' field for the output SPDX document")
	spdxDocumentNamespace := fs.String("spdx-document-namespace", "", "The 'documentNamespace' field for the output SPDX document")
	spdxCreators := fs.String("spdx-creators", "", "The 'creators' field for the output SPDX document. Format is --spdx-creators=creatortype1:creator1,creatortype2:creator2")
	cdxComponentName := fs.String("cdx-component-name", "", "The 'metadata.component.name' field for the output CDX document")
	cdxComponentVersion := fs.String("cdx-component-version", "", "The 'metadata.component.version' field for the output CDX document")
	cdxAuthors := fs.String("cdx-authors", "", "The 'authors' field for the output CDX document. Format is --cdx-authors=author1,author2")
	verbose := fs.Bool("verbose", false, "Enable this to write debug logs")
	printVersion := fs.Bool("version", false, "Print the tool version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	flags := &cli.Flags{
		Args:                  fs.Args(),
		Output:                output,
		OfflineHive:           *offlineHive,
		NoRegistryFallback:    *noRegistryFallback,
		Properties:            *properties,
		LogDir:                *logDir,
		SPDXDocumentName:      *spdxDocumentName,
		SPDXDocumentNamespace: *spdxDocumentNamespace,
		SPDXCreators:          *spdxCreators,
		CDXComponentName:      *cdxComponentName,
		CDXComponentVersion:   *cdxComponentVersion,
		CDXAuthors:            *cdxAuthors,
		Verbose:               *verbose,
		PrintVersion:          *printVersion,
	}
	if err := cli.ValidateFlags(flags); err != nil {
		return nil, err
	}
	return flags, nil
}
