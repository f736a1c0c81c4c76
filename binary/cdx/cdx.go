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

// Package cdx provides utilities for writing CycloneDX documents to the filesystem.
package cdx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/CycloneDX/cyclonedx-go"
)

var formats = map[string]cyclonedx.BOMFileFormat{
	"cdx-json": cyclonedx.BOMFileFormatJSON,
	"cdx-xml":  cyclonedx.BOMFileFormatXML,
}

// IsFormat returns whether format names a supported CDX output format.
func IsFormat(format string) bool {
	_, ok := formats[format]
	return ok
}

// Encode writes a CDX document to w in the chosen format.
func Encode(doc *cyclonedx.BOM, w io.Writer, format string) error {
	cdxFormat, ok := formats[format]
	if !ok {
		return fmt.Errorf("%q is an invalid CDX format or not supported by msiproducts", format)
	}
	return cyclonedx.NewBOMEncoder(w, cdxFormat).SetPretty(true).Encode(doc)
}

// Write writes a CDX document into a file in the chosen format and returns the number of bytes
// written.
func Write(doc *cyclonedx.BOM, path string, format string) (int, error) {
	var buf bytes.Buffer
	if err := Encode(doc, &buf, format); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
