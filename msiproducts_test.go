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

package msiproducts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/msiproducts"
	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/resolver"
	"github.com/google/msiproducts/semantic"
	"github.com/google/msiproducts/testing/fakelogger"
	"github.com/google/msiproducts/testing/mockinstaller"
	"github.com/google/msiproducts/version"
)

var (
	upgradeCode = guid.MustParse("{12345678-1234-1234-1234-123456789012}")
	productA    = guid.MustParse("{1D8E6291-B0D5-35EC-8441-6616F567A0F7}")
)

func TestScan(t *testing.T) {
	inst := &mockinstaller.MockInstaller{
		Families: map[guid.GUID][]*mockinstaller.Product{
			upgradeCode: {mockinstaller.Version(productA, "1.2.3.4")},
		},
	}
	cfg := &msiproducts.ScanConfig{
		Opener: mockinstaller.NewOpener(inst),
		Logger: fakelogger.New(),
	}

	got, err := msiproducts.Scan(context.Background(), upgradeCode, cfg)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}

	v := semantic.MustParse("1.2.3.4")
	want := &msiproducts.ScanResult{
		Version:     version.ToolVersion,
		UpgradeCode: upgradeCode,
		Products: []*resolver.ProductEntry{
			{ProductCode: productA, Version: &v, RawVersion: "1.2.3.4"},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(msiproducts.ScanResult{}, "StartTime", "EndTime")); diff != "" {
		t.Errorf("Scan() returned diff (-want +got):\n%s", diff)
	}
	if got.StartTime.IsZero() || got.EndTime.Before(got.StartTime) {
		t.Errorf("Scan() times = [%v, %v], want a non-empty interval", got.StartTime, got.EndTime)
	}
}

func TestScan_Errors(t *testing.T) {
	openErr := errors.New("no installer")
	tests := []struct {
		desc string
		cfg  *msiproducts.ScanConfig
		want error
	}{
		{
			desc: "nil_config",
			cfg:  nil,
		},
		{
			desc: "no_opener",
			cfg:  &msiproducts.ScanConfig{},
		},
		{
			desc: "open_failure",
			cfg: &msiproducts.ScanConfig{
				Opener: &mockinstaller.Opener{OpenErr: openErr},
				Logger: fakelogger.New(),
			},
			want: openErr,
		},
		{
			desc: "enumeration_failure",
			cfg: &msiproducts.ScanConfig{
				Opener: mockinstaller.NewOpener(&mockinstaller.MockInstaller{EnumErr: errors.New("bad config")}),
				Logger: fakelogger.New(),
			},
			want: resolver.ErrEnumerationFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := msiproducts.Scan(context.Background(), upgradeCode, tc.cfg)
			if err == nil {
				t.Fatalf("Scan() = %v, want error", got)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("Scan() error = %v, want %v", err, tc.want)
			}
		})
	}
}
