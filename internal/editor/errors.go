// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"errors"
	"fmt"

	"github.com/ubuntu/ubuntuwsl/internal/schema"
)

var (
	// ErrKeyNotFound is the sentinel error wrapped by KeyNotFoundError.
	ErrKeyNotFound = errors.New("key not found in live configuration")
	// ErrValidation is the sentinel error wrapped by ValidationError.
	ErrValidation = errors.New("invalid value")
	// ErrPrivilegeRequired is the sentinel error wrapped by PrivilegeRequiredError.
	ErrPrivilegeRequired = errors.New("root privileges required")
	// ErrUnknownSettingType is the sentinel error wrapped by UnknownSettingTypeError.
	ErrUnknownSettingType = errors.New("unknown setting type")
	// ErrInstanceMismatch is returned when an imported file belongs to another instance.
	ErrInstanceMismatch = errors.New("imported configuration belongs to another instance")
	// ErrInvalidExportFormat is returned when an ExportFormat value is not recognized.
	ErrInvalidExportFormat = errors.New("invalid export format")
)

type (
	// KeyNotFoundError is returned when a section or key is absent from the live
	// configuration. Unlike schema.UnknownSettingError it reflects merged runtime state.
	KeyNotFoundError struct {
		Instance schema.InstanceType
		Section  string
		Setting  string
	}

	// ValidationError is returned when a value fails its type-specific check.
	// Message is the user-facing diagnostic.
	ValidationError struct {
		Key     schema.Key
		Value   string
		Message string
	}

	// PrivilegeRequiredError is returned when a mutation is attempted without
	// elevated rights. Front ends are expected to stop the interaction.
	PrivilegeRequiredError struct {
		Operation string
		Path      string
	}

	// UnknownSettingTypeError signals a schema entry with an unsupported type.
	// It is an internal fault, never a user input problem.
	UnknownSettingTypeError struct {
		Key  schema.Key
		Type schema.SettingType
	}

	// InvalidExportFormatError is returned when an ExportFormat value is not recognized.
	InvalidExportFormatError struct {
		Value ExportFormat
	}
)

// Error implements the error interface.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s.%s.%s not found", e.Instance, e.Section, e.Setting)
}

// Unwrap returns ErrKeyNotFound so callers can use errors.Is for programmatic detection.
func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Message)
}

// Unwrap returns ErrValidation so callers can use errors.Is for programmatic detection.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error implements the error interface.
func (e *PrivilegeRequiredError) Error() string {
	return fmt.Sprintf("%s %s: root privileges required", e.Operation, e.Path)
}

// Unwrap returns ErrPrivilegeRequired so callers can use errors.Is for programmatic detection.
func (e *PrivilegeRequiredError) Unwrap() error { return ErrPrivilegeRequired }

// Error implements the error interface.
func (e *UnknownSettingTypeError) Error() string {
	return fmt.Sprintf("unknown type %q to be validated for %s", e.Type, e.Key)
}

// Unwrap returns ErrUnknownSettingType so callers can use errors.Is for programmatic detection.
func (e *UnknownSettingTypeError) Unwrap() error { return ErrUnknownSettingType }

// Error implements the error interface.
func (e *InvalidExportFormatError) Error() string {
	return fmt.Sprintf("invalid export format %q (valid: %s, %s)", e.Value, FormatTOML, FormatYAML)
}

// Unwrap returns ErrInvalidExportFormat so callers can use errors.Is for programmatic detection.
func (e *InvalidExportFormatError) Unwrap() error { return ErrInvalidExportFormat }
