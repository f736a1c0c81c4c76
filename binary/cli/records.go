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

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/msiproducts"
	"gopkg.in/yaml.v3"
)

// scanRecord is the serialized form of a scan result in the json and yaml outputs.
type scanRecord struct {
	Version     string          `json:"version" yaml:"version"`
	StartTime   time.Time       `json:"start_time" yaml:"start_time"`
	EndTime     time.Time       `json:"end_time" yaml:"end_time"`
	UpgradeCode string          `json:"upgrade_code" yaml:"upgrade_code"`
	Products    []productRecord `json:"products" yaml:"products"`
}

type productRecord struct {
	ProductCode  string            `json:"product_code" yaml:"product_code"`
	Version      string            `json:"version,omitempty" yaml:"version,omitempty"`
	RawVersion   string            `json:"raw_version,omitempty" yaml:"raw_version,omitempty"`
	VersionError string            `json:"version_error,omitempty" yaml:"version_error,omitempty"`
	Properties   map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func toRecord(result *msiproducts.ScanResult) *scanRecord {
	r := &scanRecord{
		Version:     result.Version,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		UpgradeCode: result.UpgradeCode.String(),
		Products:    make([]productRecord, 0, len(result.Products)),
	}
	for _, p := range result.Products {
		pr := productRecord{
			ProductCode: p.ProductCode.String(),
			RawVersion:  p.RawVersion,
		}
		if p.Version != nil {
			pr.Version = p.Version.String()
		}
		if p.VersionErr != nil {
			pr.VersionError = p.VersionErr.Error()
		}
		if len(p.Properties) > 0 {
			pr.Properties = make(map[string]string, len(p.Properties))
			for k, v := range p.Properties {
				pr.Properties[string(k)] = v
			}
		}
		r.Products = append(r.Products, pr)
	}
	return r
}

func encodeResult(result *msiproducts.ScanResult, format string) ([]byte, error) {
	r := toRecord(result)
	switch format {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("%q is not a result format", format)
	}
}

func writeResult(result *msiproducts.ScanResult, path, format string) (int, error) {
	b, err := encodeResult(result, format)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return 0, err
	}
	return len(b), nil
}
