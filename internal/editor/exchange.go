// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ubuntu/ubuntuwsl/internal/inifile"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatTOML is the default interchange format.
	FormatTOML ExportFormat = "toml"
	// FormatYAML is the YAML interchange format.
	FormatYAML ExportFormat = "yaml"

	exportTimeLayout = "20060102-150405"
)

type (
	// ExportFormat selects the interchange encoding of Export and Import.
	ExportFormat string

	exchangeDocument struct {
		Instance string            `toml:"instance" yaml:"instance"`
		Sections []exchangeSection `toml:"section" yaml:"section"`
	}

	exchangeSection struct {
		Name     string            `toml:"name" yaml:"name"`
		Settings []exchangeSetting `toml:"setting" yaml:"setting"`
	}

	exchangeSetting struct {
		Name  string `toml:"name" yaml:"name"`
		Value string `toml:"value" yaml:"value"`
	}
)

// String returns the string representation of the ExportFormat.
func (f ExportFormat) String() string { return string(f) }

// IsValid returns whether the ExportFormat is one of the supported formats.
func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatTOML, FormatYAML:
		return true
	default:
		return false
	}
}

// Validate returns nil if the ExportFormat is supported, or an error wrapping
// ErrInvalidExportFormat otherwise.
func (f ExportFormat) Validate() error {
	if f.IsValid() {
		return nil
	}
	return &InvalidExportFormatError{Value: f}
}

// Extension returns the file extension without the leading dot.
func (f ExportFormat) Extension() string { return string(f) }

// ParseExportFormat accepts "toml", "yaml" and "yml", case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (ExportFormat, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &InvalidExportFormatError{Value: ExportFormat(ext)}
	}
	return ParseExportFormat(ext)
}

// ExportFileName returns the file name an export should be written to. An
// empty name becomes "<instance>-<timestamp>.<ext>"; a name without extension
// gets one.
func (e *Editor) ExportFileName(name string, format ExportFormat) string {
	if name == "" {
		return fmt.Sprintf("%s-%s.%s", e.inst.Type, e.clock.Now().Format(exportTimeLayout), format.Extension())
	}
	if filepath.Ext(name) == "" {
		return name + "." + format.Extension()
	}
	return name
}

// Export writes the live configuration, schema keys first, in the requested format.
func (e *Editor) Export(w io.Writer, format ExportFormat) error {
	if err := format.Validate(); err != nil {
		return err
	}

	doc := exchangeDocument{Instance: e.inst.Type.String()}
	for _, sec := range e.live.Sections() {
		xs := exchangeSection{Name: sec, Settings: []exchangeSetting{}}
		for _, key := range e.live.Keys(sec) {
			v, _ := e.live.Get(sec, key)
			xs.Settings = append(xs.Settings, exchangeSetting{Name: key, Value: v})
		}
		doc.Sections = append(doc.Sections, xs)
	}

	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	e.logger.Debug("exported configuration", "format", format)
	return nil
}

// Import replaces the live configuration with the content of r. Nothing is
// written and nothing is validated; call Save to persist.
func (e *Editor) Import(r io.Reader, format ExportFormat) error {
	if err := format.Validate(); err != nil {
		return err
	}

	var doc exchangeDocument
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", format, err)
	}
	if doc.Instance != e.inst.Type.String() {
		return fmt.Errorf("%w: file is for %q, editor is for %q", ErrInstanceMismatch, doc.Instance, e.inst.Type)
	}

	imported := inifile.New()
	for _, sec := range doc.Sections {
		imported.AddSection(sec.Name)
		for _, s := range sec.Settings {
			imported.Set(sec.Name, s.Name, s.Value)
		}
	}

	live := e.defaults()
	live.Overlay(imported)
	e.live = live
	e.logger.Debug("imported configuration", "format", format, "sections", len(doc.Sections))
	return nil
}
