// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"errors"
	"fmt"
)

const (
	// InstanceUbuntu is the Ubuntu distribution settings file.
	InstanceUbuntu InstanceType = "ubuntu"
	// InstanceWSL is the WSL compatibility-layer settings file.
	InstanceWSL InstanceType = "wsl"

	// TypeBool accepts exactly "true" or "false".
	TypeBool SettingType = "bool"
	// TypePath accepts an absolute POSIX path.
	TypePath SettingType = "path"
	// TypeMountOptionList accepts a comma-separated list of mount options.
	TypeMountOptionList SettingType = "mount-option-list"
)

var (
	// ErrUnknownInstance is the sentinel error wrapped by UnknownInstanceError.
	ErrUnknownInstance = errors.New("unknown configuration instance")
	// ErrUnknownSetting is the sentinel error wrapped by UnknownSettingError.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrInvalidSettingType is returned when a SettingType value is not recognized.
	ErrInvalidSettingType = errors.New("invalid setting type")
	// ErrInvalidKey is the sentinel error wrapped by InvalidKeyError.
	ErrInvalidKey = errors.New("invalid setting key")
)

type (
	// InstanceType identifies one configuration file.
	InstanceType string

	// SettingType is the declared value type of a setting. Validation is driven
	// entirely by this field, never by the shape of the current value.
	SettingType string

	// UnknownInstanceError is returned when an InstanceType is not registered.
	// It wraps ErrUnknownInstance for errors.Is() compatibility.
	UnknownInstanceError struct {
		Instance InstanceType
	}

	// UnknownSettingError is returned when an (instance, section, name) triple
	// is not registered. It wraps ErrUnknownSetting for errors.Is() compatibility.
	UnknownSettingError struct {
		Instance InstanceType
		Section  string
		Name     string
	}

	// InvalidSettingTypeError is returned when a SettingType value is not recognized.
	InvalidSettingTypeError struct {
		Value SettingType
	}

	// InvalidKeyError is returned when a dotted key cannot be parsed.
	InvalidKeyError struct {
		Value string
	}
)

// String returns the string representation of the InstanceType.
func (t InstanceType) String() string { return string(t) }

// String returns the string representation of the SettingType.
func (t SettingType) String() string { return string(t) }

// IsValid returns whether the SettingType is one of the supported types.
func (t SettingType) IsValid() bool {
	switch t {
	case TypeBool, TypePath, TypeMountOptionList:
		return true
	default:
		return false
	}
}

// Validate returns nil if the SettingType is supported, or an error wrapping
// ErrInvalidSettingType otherwise.
func (t SettingType) Validate() error {
	if t.IsValid() {
		return nil
	}
	return &InvalidSettingTypeError{Value: t}
}

// Error implements the error interface.
func (e *UnknownInstanceError) Error() string {
	return fmt.Sprintf("unknown configuration instance %q (valid: %s, %s)", e.Instance, InstanceUbuntu, InstanceWSL)
}

// Unwrap returns ErrUnknownInstance so callers can use errors.Is for programmatic detection.
func (e *UnknownInstanceError) Unwrap() error { return ErrUnknownInstance }

// Error implements the error interface.
func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("unknown setting %s.%s.%s", e.Instance, e.Section, e.Name)
}

// Unwrap returns ErrUnknownSetting so callers can use errors.Is for programmatic detection.
func (e *UnknownSettingError) Unwrap() error { return ErrUnknownSetting }

// Error implements the error interface.
func (e *InvalidSettingTypeError) Error() string {
	return fmt.Sprintf("invalid setting type %q (valid: %s, %s, %s)", e.Value, TypeBool, TypePath, TypeMountOptionList)
}

// Unwrap returns ErrInvalidSettingType so callers can use errors.Is for programmatic detection.
func (e *InvalidSettingTypeError) Unwrap() error { return ErrInvalidSettingType }

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid setting key %q (expected <instance>.<section>.<setting>)", e.Value)
}

// Unwrap returns ErrInvalidKey so callers can use errors.Is for programmatic detection.
func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }
