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

// Package mockregistry provides an in-memory implementation of the registry.Registry interface.
package mockregistry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/msiproducts/common/windows/registry"
)

var errValueNotFound = errors.New("value not found")

// Opener returns the same MockRegistry on every Open, or OpenErr when set.
type Opener struct {
	Registry *MockRegistry
	OpenErr  error
}

// NewOpener returns an opener for the given registry.
func NewOpener(registry *MockRegistry) *Opener {
	return &Opener{Registry: registry}
}

// Open returns the mock registry.
func (o *Opener) Open() (registry.Registry, error) {
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	return o.Registry, nil
}

// MockRegistry maps key paths to keys. Paths are matched case-insensitively and without leading
// or trailing backslashes, regardless of the hive.
type MockRegistry struct {
	Keys map[string]registry.Key

	// Closed counts the calls to Close.
	Closed int
}

// OpenKey returns the key registered under path.
func (o *MockRegistry) OpenKey(_ string, path string) (registry.Key, error) {
	want := strings.Trim(path, `\`)
	for p, key := range o.Keys {
		if strings.EqualFold(strings.Trim(p, `\`), want) {
			return key, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", registry.ErrKeyNotFound, path)
}

// Close records the call.
func (o *MockRegistry) Close() error {
	o.Closed++
	return nil
}

// MockKey is an in-memory registry key.
type MockKey struct {
	KName    string
	KSubkeys []registry.Key
	KValues  []registry.Value
	// KValuesErr is returned by Values when set.
	KValuesErr error
}

// Name returns the key name.
func (o *MockKey) Name() string {
	return o.KName
}

// Close is a no-op.
func (o *MockKey) Close() error {
	return nil
}

// SubkeyNames returns the names of KSubkeys.
func (o *MockKey) SubkeyNames() ([]string, error) {
	var names []string
	for _, subkey := range o.KSubkeys {
		names = append(names, subkey.Name())
	}

	return names, nil
}

// Value returns the value with the given name, matched case-insensitively.
func (o *MockKey) Value(name string) (registry.Value, error) {
	for _, value := range o.KValues {
		if strings.EqualFold(value.Name(), name) {
			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errValueNotFound, name)
}

// ValueString returns the string data of the named value.
func (o *MockKey) ValueString(name string) (string, error) {
	value, err := o.Value(name)
	if err != nil {
		return "", err
	}

	return value.DataString()
}

// Values returns KValues, or KValuesErr when set.
func (o *MockKey) Values() ([]registry.Value, error) {
	if o.KValuesErr != nil {
		return nil, o.KValuesErr
	}
	return o.KValues, nil
}

// MockValue is an in-memory registry value.
type MockValue struct {
	VName       string
	VDataString string
}

// Name returns the value name.
func (o *MockValue) Name() string {
	return o.VName
}

// DataString returns VDataString.
func (o *MockValue) DataString() (string, error) {
	return o.VDataString, nil
}

// StringValues builds string values from name/data pairs, in argument order.
func StringValues(pairs ...string) []registry.Value {
	if len(pairs)%2 != 0 {
		panic("mockregistry.StringValues: odd number of arguments")
	}
	values := make([]registry.Value, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		values = append(values, &MockValue{VName: pairs[i], VDataString: pairs[i+1]})
	}

	return values
}
