// SPDX-License-Identifier: MPL-2.0

package schema

import "strings"

// Key addresses one setting as <instance>.<section>.<setting>.
type Key struct {
	Instance InstanceType
	Section  string
	Setting  string
}

// ParseKey splits a dotted key. The instance is not checked against a registry.
func ParseKey(s string) (Key, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return Key{}, &InvalidKeyError{Value: s}
	}
	for _, p := range parts {
		if p == "" {
			return Key{}, &InvalidKeyError{Value: s}
		}
	}
	return Key{Instance: InstanceType(parts[0]), Section: parts[1], Setting: parts[2]}, nil
}

// String renders the key in dotted form.
func (k Key) String() string {
	return k.Instance.String() + "." + k.Section + "." + k.Setting
}
