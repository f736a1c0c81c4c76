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

// Package reginstaller answers installer queries from the registry data the Windows Installer
// keeps under the SOFTWARE hive. It works against the live registry or an offline hive file.
package reginstaller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/msiproducts/common/windows/registry"
	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/installer"
	"github.com/google/msiproducts/log"
	"go.uber.org/multierr"
)

const (
	upgradeCodesPath = `Classes\Installer\UpgradeCodes`
	userDataPath     = `Microsoft\Windows\CurrentVersion\Installer\UserData`
	// localSystemSID holds per-machine installations.
	localSystemSID = "S-1-5-18"
)

// valueNames maps installer properties to the value names used under InstallProperties when
// they differ.
var valueNames = map[installer.Property]string{
	installer.PropertyVersionString:        "DisplayVersion",
	installer.PropertyInstalledProductName: "DisplayName",
}

// Configuration for the registry installer.
type Configuration struct {
	Opener registry.Opener
	// SoftwareRoot is the path of the SOFTWARE key inside HKLM. It is empty when reading a
	// SOFTWARE hive file, whose root is the SOFTWARE key itself.
	SoftwareRoot string
}

// DefaultConfiguration reads the live registry.
func DefaultConfiguration() Configuration {
	return Configuration{
		Opener:       registry.NewLiveOpener(),
		SoftwareRoot: "SOFTWARE",
	}
}

// Opener opens registry installers.
type Opener struct {
	cfg Configuration
}

// New returns an Opener for the given configuration.
func New(cfg Configuration) *Opener {
	return &Opener{cfg: cfg}
}

// NewDefault returns an Opener on the live registry.
func NewDefault() *Opener {
	return New(DefaultConfiguration())
}

// NewOffline returns an Opener reading the SOFTWARE hive file at hivePath.
func NewOffline(hivePath string) *Opener {
	return New(Configuration{
		Opener:       registry.NewOfflineOpener(hivePath),
		SoftwareRoot: "",
	})
}

// Open opens the registry.
func (o *Opener) Open() (installer.Installer, error) {
	if o.cfg.Opener == nil {
		return nil, errors.New("reginstaller: no registry opener configured")
	}
	reg, err := o.cfg.Opener.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	return &Installer{
		reg:      reg,
		root:     strings.Trim(o.cfg.SoftwareRoot, `\`),
		families: make(map[guid.GUID][]guid.GUID),
	}, nil
}

// Installer is an open handle on the registry.
type Installer struct {
	reg  registry.Registry
	root string
	// families caches the product codes read for each upgrade code.
	families map[guid.GUID][]guid.GUID
	// closeErr collects key close failures, reported by Close.
	closeErr error
}

func (i *Installer) closeKey(key registry.Key) {
	multierr.AppendInto(&i.closeErr, key.Close())
}

func (i *Installer) path(elems ...string) string {
	if i.root != "" {
		elems = append([]string{i.root}, elems...)
	}
	return strings.Join(elems, `\`)
}

// EnumRelatedProducts returns the product at the given index in the UpgradeCodes key of the
// family.
func (i *Installer) EnumRelatedProducts(upgradeCode guid.GUID, index int) (guid.GUID, error) {
	products, ok := i.families[upgradeCode]
	if !ok {
		var err error
		products, err = i.readFamily(upgradeCode)
		if err != nil {
			return guid.Nil, err
		}
		i.families[upgradeCode] = products
	}

	if index < 0 || index >= len(products) {
		return guid.Nil, installer.NewError("EnumRelatedProducts", installer.ErrorNoMoreItems)
	}
	return products[index], nil
}

func (i *Installer) readFamily(upgradeCode guid.GUID) ([]guid.GUID, error) {
	key, err := i.reg.OpenKey(registry.HiveLocalMachine, i.path(upgradeCodesPath, upgradeCode.Packed()))
	if errors.Is(err, registry.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Errorf("cannot open UpgradeCodes key of %v: %v", upgradeCode, err)
		return nil, installer.NewError("EnumRelatedProducts", installer.ErrorBadConfiguration)
	}
	defer i.closeKey(key)

	values, err := key.Values()
	if err != nil {
		log.Errorf("cannot read UpgradeCodes values of %v: %v", upgradeCode, err)
		return nil, installer.NewError("EnumRelatedProducts", installer.ErrorBadConfiguration)
	}

	var products []guid.GUID
	for _, v := range values {
		product, err := guid.ParsePacked(v.Name())
		if err != nil {
			log.Debugf("skipping value %q of UpgradeCodes key %s: %v", v.Name(), upgradeCode.Packed(), err)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// ProductInfo reads a property from the InstallProperties key of the product, looking at
// per-machine installations first.
func (i *Installer) ProductInfo(product guid.GUID, prop installer.Property) (string, error) {
	key, err := i.installProperties(product)
	if err != nil {
		return "", err
	}
	defer i.closeKey(key)

	name, ok := valueNames[prop]
	if !ok {
		name = string(prop)
	}
	value, err := key.ValueString(name)
	if err != nil {
		log.Debugf("value %s of %v not found: %v", name, product, err)
		return "", installer.NewError("GetProductInfo", installer.ErrorUnknownProperty)
	}
	return value, nil
}

func (i *Installer) installProperties(product guid.GUID) (registry.Key, error) {
	packed := product.Packed()
	propsPath := func(sid string) string {
		return i.path(userDataPath, sid, "Products", packed, "InstallProperties")
	}

	if key, err := i.reg.OpenKey(registry.HiveLocalMachine, propsPath(localSystemSID)); err == nil {
		return key, nil
	}

	userData, err := i.reg.OpenKey(registry.HiveLocalMachine, i.path(userDataPath))
	if err != nil {
		return nil, installer.NewError("GetProductInfo", installer.ErrorUnknownProduct)
	}
	sids, err := userData.SubkeyNames()
	i.closeKey(userData)
	if err != nil {
		log.Debugf("cannot list UserData subkeys: %v", err)
		return nil, installer.NewError("GetProductInfo", installer.ErrorUnknownProduct)
	}

	for _, sid := range sids {
		if strings.EqualFold(sid, localSystemSID) {
			continue
		}
		if key, err := i.reg.OpenKey(registry.HiveLocalMachine, propsPath(sid)); err == nil {
			return key, nil
		}
	}
	return nil, installer.NewError("GetProductInfo", installer.ErrorUnknownProduct)
}

// Close closes the registry.
func (i *Installer) Close() error {
	return multierr.Append(i.closeErr, i.reg.Close())
}
