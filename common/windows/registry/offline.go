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

package registry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"www.velocidex.com/golang/regparser"
)

// Registry value types, as stored in hive files.
const (
	regSZ             = 1
	regExpandSZ       = 2
	regDWORD          = 4
	regDWORDBigEndian = 5
	regMultiSZ        = 7
	regQWORD          = 11
)

var errValueNotFound = errors.New("value not found")

// OfflineOpener opens a registry hive file, e.g. a copy of %SystemRoot%\System32\config\SOFTWARE.
type OfflineOpener struct {
	Filepath string
}

// NewOfflineOpener creates a new OfflineOpener for the hive file at path.
func NewOfflineOpener(path string) *OfflineOpener {
	return &OfflineOpener{Filepath: path}
}

// Open parses the hive file. The file stays open until the returned registry is closed.
func (o *OfflineOpener) Open() (Registry, error) {
	f, err := os.Open(o.Filepath)
	if err != nil {
		return nil, err
	}

	reg, err := regparser.NewRegistry(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parsing hive %s: %w", o.Filepath, err)
	}

	return &OfflineRegistry{registry: reg, file: f}, nil
}

// OfflineRegistry wraps the regparser library to provide offline (from file) parsing of a
// registry hive. Paths are relative to the root of the hive file; the hive name passed to OpenKey
// is ignored since a file only ever holds one hive.
type OfflineRegistry struct {
	registry *regparser.Registry
	file     *os.File
}

// OpenKey open the requested registry key.
func (o *OfflineRegistry) OpenKey(_ string, path string) (Key, error) {
	path = strings.Trim(path, `\`)
	node := o.registry.OpenKey(path)
	if node == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}

	return &OfflineKey{key: node}, nil
}

// Close closes the underlying hive file.
func (o *OfflineRegistry) Close() error {
	return o.file.Close()
}

// OfflineKey wraps a regparser.CM_KEY_NODE to provide an implementation of the registry.Key
// interface.
type OfflineKey struct {
	key *regparser.CM_KEY_NODE
}

// Name returns the name of the key.
func (o *OfflineKey) Name() string {
	return o.key.Name()
}

// Close is a no-op: keys share the hive file.
func (o *OfflineKey) Close() error {
	return nil
}

// SubkeyNames returns the names of the subkeys of the key.
func (o *OfflineKey) SubkeyNames() ([]string, error) {
	var names []string
	for _, subkey := range o.key.Subkeys() {
		names = append(names, subkey.Name())
	}

	return names, nil
}

// Value returns the value with the given name. Names are matched case-insensitively, as the
// registry does.
func (o *OfflineKey) Value(name string) (Value, error) {
	for _, value := range o.key.Values() {
		if strings.EqualFold(value.ValueName(), name) {
			return &OfflineValue{value}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q in %s", errValueNotFound, name, o.key.Name())
}

// ValueString directly returns the content (as string) of the named value.
func (o *OfflineKey) ValueString(name string) (string, error) {
	value, err := o.Value(name)
	if err != nil {
		return "", err
	}

	return value.DataString()
}

// Values returns the different values contained in the key.
func (o *OfflineKey) Values() ([]Value, error) {
	var values []Value
	for _, value := range o.key.Values() {
		values = append(values, &OfflineValue{value})
	}

	return values, nil
}

// OfflineValue wraps a regparser.CM_KEY_VALUE to provide an implementation of the registry.Value
// interface.
type OfflineValue struct {
	value *regparser.CM_KEY_VALUE
}

// Name returns the name of the value.
func (o *OfflineValue) Name() string {
	return o.value.ValueName()
}

// DataString returns the data contained in the value as a string. Integer values are formatted
// in decimal and REG_MULTI_SZ entries are joined with newlines.
func (o *OfflineValue) DataString() (string, error) {
	vd := o.value.ValueData()
	switch vd.Type {
	case regSZ, regExpandSZ, regMultiSZ:
		s, err := decodeUTF16(vd.Data)
		if err != nil {
			return "", fmt.Errorf("decoding value %q: %w", o.Name(), err)
		}
		if vd.Type == regMultiSZ {
			return strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == 0 }), "\n"), nil
		}
		return s, nil
	case regDWORD:
		if len(vd.Data) < 4 {
			return "", fmt.Errorf("value %q: short REG_DWORD", o.Name())
		}
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(vd.Data)), 10), nil
	case regDWORDBigEndian:
		if len(vd.Data) < 4 {
			return "", fmt.Errorf("value %q: short REG_DWORD_BIG_ENDIAN", o.Name())
		}
		return strconv.FormatUint(uint64(binary.BigEndian.Uint32(vd.Data)), 10), nil
	case regQWORD:
		if len(vd.Data) < 8 {
			return "", fmt.Errorf("value %q: short REG_QWORD", o.Name())
		}
		return strconv.FormatUint(binary.LittleEndian.Uint64(vd.Data), 10), nil
	default:
		return "", fmt.Errorf("unsupported value type: %v for value %q", vd.Type, o.Name())
	}
}

// decodeUTF16 decodes UTF-16LE registry string data and strips the trailing NUL terminator(s).
func decodeUTF16(data []byte) (string, error) {
	s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(s), "\x00"), nil
}
