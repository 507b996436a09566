// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ubuntu/ubuntuwsl/internal/editor"
)

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"

	// LogLevelDebug logs editor load and persist details.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn only logs warnings and errors.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError only logs errors.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidTheme is returned when a Theme value is not recognized.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidFilePath is the sentinel error wrapped by InvalidFilePathError.
	ErrInvalidFilePath = errors.New("invalid file path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Theme names a huh form theme. Defined locally to avoid coupling config to tui.
	Theme string

	// InvalidThemeError is returned when a Theme value is not recognized.
	// It wraps ErrInvalidTheme for errors.Is() compatibility.
	InvalidThemeError struct {
		Value Theme
	}

	// LogLevel is the minimum level of the tool logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// FilePath is an optional absolute path. The zero value means "built-in location".
	FilePath string

	// InvalidFilePathError is returned when a non-empty FilePath is relative.
	InvalidFilePathError struct {
		Field string
		Value FilePath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the settings of the tool itself.
	Config struct {
		// UI configures the interactive front end
		UI UIConfig `toml:"ui" mapstructure:"ui"`
		// Log configures the tool logger
		Log LogConfig `toml:"log" mapstructure:"log"`
		// Export configures export and import defaults
		Export ExportConfig `toml:"export" mapstructure:"export"`
		// Files overrides the location of the WSL configuration files
		Files FilesConfig `toml:"files" mapstructure:"files"`
		// Privilege configures the root check before writes
		Privilege PrivilegeConfig `toml:"privilege" mapstructure:"privilege"`
	}

	// UIConfig configures the interactive front end.
	UIConfig struct {
		Theme      Theme `toml:"theme" mapstructure:"theme"`
		Accessible bool  `toml:"accessible" mapstructure:"accessible"`
	}

	// LogConfig configures the tool logger.
	LogConfig struct {
		Level LogLevel `toml:"level" mapstructure:"level"`
	}

	// ExportConfig configures export and import.
	ExportConfig struct {
		// Format is used when neither --format nor a file extension decides
		Format editor.ExportFormat `toml:"format" mapstructure:"format"`
		// Dir is where exports without a directory are written. Empty means the
		// working directory.
		Dir FilePath `toml:"dir" mapstructure:"dir"`
	}

	// FilesConfig overrides the location of the WSL configuration files.
	FilesConfig struct {
		Ubuntu FilePath `toml:"ubuntu" mapstructure:"ubuntu"`
		WSL    FilePath `toml:"wsl" mapstructure:"wsl"`
	}

	// PrivilegeConfig configures the root check.
	PrivilegeConfig struct {
		// Required refuses writes when the process is not root (default: true)
		Required bool `toml:"required" mapstructure:"required"`
	}
)

// String returns the string representation of the Theme.
func (t Theme) String() string { return string(t) }

// IsValid returns whether the Theme is one of the defined themes,
// and a list of validation errors if it is not.
func (t Theme) IsValid() (bool, []error) {
	switch t {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return true, nil
	default:
		return false, []error{&InvalidThemeError{Value: t}}
	}
}

// Error implements the error interface for InvalidThemeError.
func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q (valid: default, charm, dracula, catppuccin, base16)", e.Value)
}

// Unwrap returns ErrInvalidTheme for errors.Is() compatibility.
func (e *InvalidThemeError) Unwrap() error { return ErrInvalidTheme }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the FilePath.
func (p FilePath) String() string { return string(p) }

// validate checks a FilePath stored under field.
func (p FilePath) validate(field string) (bool, []error) {
	if p == "" || filepath.IsAbs(string(p)) {
		return true, nil
	}
	return false, []error{&InvalidFilePathError{Field: field, Value: p}}
}

// Error implements the error interface for InvalidFilePathError.
func (e *InvalidFilePathError) Error() string {
	return fmt.Sprintf("%s: path %q must be absolute", e.Field, e.Value)
}

// Unwrap returns ErrInvalidFilePath for errors.Is() compatibility.
func (e *InvalidFilePathError) Unwrap() error { return ErrInvalidFilePath }

// IsValid returns whether the Config has valid fields.
// Bool fields need no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.Theme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := c.Export.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, p := range []struct {
		field string
		path  FilePath
	}{
		{"export.dir", c.Export.Dir},
		{"files.ubuntu", c.Files.Ubuntu},
		{"files.wsl", c.Files.WSL},
	} {
		if valid, fieldErrs := p.path.validate(p.field); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:      ThemeDefault,
			Accessible: false,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
		Export: ExportConfig{
			Format: editor.FormatTOML,
			Dir:    "", // working directory
		},
		Files: FilesConfig{
			Ubuntu: "", // built-in location
			WSL:    "",
		},
		Privilege: PrivilegeConfig{
			Required: true,
		},
	}
}
