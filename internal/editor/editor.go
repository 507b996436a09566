// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/inifile"
	"github.com/ubuntu/ubuntuwsl/internal/issue"
	"github.com/ubuntu/ubuntuwsl/internal/privilege"
	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// Options carries the collaborators of an Editor. Nil fields are replaced
	// with defaults by New.
	Options struct {
		// Fs is where the override file lives. Defaults to the OS file system.
		Fs afero.Fs
		// Privilege gates mutations. A nil Checker makes an unprivileged editor
		// that never refuses a mutation.
		Privilege privilege.Checker
		// Translator renders validation diagnostics. Defaults to English.
		Translator i18n.Translator
		// Logger receives debug output. Defaults to a discarding logger.
		Logger *log.Logger
		// Clock supplies timestamps for export file names. Defaults to wall time.
		Clock Clock
	}

	// Clock abstracts time.Now.
	Clock interface {
		Now() time.Time
	}

	realClock struct{}

	// Editor owns the live configuration of one instance.
	Editor struct {
		registry *schema.Registry
		inst     *schema.Instance
		fs       afero.Fs
		priv     privilege.Checker
		tr       i18n.Translator
		logger   *log.Logger
		clock    Clock
		live     *inifile.Document
	}

	// Entry is one key of the live configuration.
	Entry struct {
		Section string
		Setting string
		Value   string
		// Known is false for pass-through keys absent from the schema.
		Known bool
	}
)

func (realClock) Now() time.Time { return time.Now() }

// New opens an editor for an instance: defaults from the registry, overlaid by
// the override file when it exists.
func New(reg *schema.Registry, instance schema.InstanceType, opts Options) (*Editor, error) {
	inst, err := reg.LookupInstance(instance)
	if err != nil {
		return nil, err
	}

	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Translator == nil {
		opts.Translator = i18n.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}

	e := &Editor{
		registry: reg,
		inst:     inst,
		fs:       opts.Fs,
		priv:     opts.Privilege,
		tr:       opts.Translator,
		logger:   opts.Logger.With("instance", inst.Type),
		clock:    opts.Clock,
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

// Instance returns the schema definition the editor works on.
func (e *Editor) Instance() *schema.Instance { return e.inst }

// Path returns the override file location.
func (e *Editor) Path() string { return e.inst.FileLocation }

// Snapshot returns a copy of the live configuration.
func (e *Editor) Snapshot() *inifile.Document { return e.live.Clone() }

// Get returns the live value of a key.
func (e *Editor) Get(section, setting string) (string, error) {
	v, ok := e.live.Get(section, setting)
	if !ok {
		return "", &KeyNotFoundError{Instance: e.inst.Type, Section: section, Setting: setting}
	}
	return v, nil
}

// List enumerates the live configuration: schema settings in declaration order,
// then pass-through keys. When isDefault is set the live configuration is first
// rebuilt from defaults; this discards in-memory state but does not touch disk.
func (e *Editor) List(isDefault bool) []Entry {
	if isDefault {
		e.live = e.defaults()
	}

	var entries []Entry
	for _, sec := range e.live.Sections() {
		for _, key := range e.live.Keys(sec) {
			v, _ := e.live.Get(sec, key)
			entries = append(entries, Entry{
				Section: sec,
				Setting: key,
				Value:   v,
				Known:   e.inst.Setting(sec, key) != nil,
			})
		}
	}
	return entries
}

// Reload discards the live configuration and reads the override file again.
func (e *Editor) Reload() error {
	return e.load()
}

// defaults builds a document holding every schema default in declaration order.
func (e *Editor) defaults() *inifile.Document {
	doc := inifile.New()
	for _, sec := range e.inst.DefaultMapping() {
		doc.AddSection(sec.Name)
		for _, entry := range sec.Entries {
			doc.Set(sec.Name, entry.Name, entry.Value)
		}
	}
	return doc
}

func (e *Editor) load() error {
	live := e.defaults()
	path := e.Path()

	if _, err := e.fs.Stat(path); os.IsNotExist(err) {
		e.logger.Debug("no override file, using defaults", "path", path)
		e.live = live
		return nil
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read override file").
			WithResource(path).
			WithIssue(issue.OverrideFileUnreadableId).
			WithSuggestion("Check that the file is readable by the current user").
			Wrap(err).
			BuildError()
	}
	doc, err := inifile.Parse(data)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read override file").
			WithResource(path).
			WithIssue(issue.OverrideFileUnreadableId).
			WithSuggestion("Check that every line is a [section] header or a key = value pair").
			Wrap(err).
			BuildError()
	}

	live.Overlay(doc)
	e.live = live
	e.logger.Debug("loaded override file", "path", path, "sections", len(doc.Sections()))
	return nil
}

// persist rewrites the override file with the whole live configuration. The
// content is fully rendered before the file is opened.
func (e *Editor) persist() error {
	var buf bytes.Buffer
	if _, err := e.live.WriteTo(&buf); err != nil {
		return fmt.Errorf("render configuration: %w", err)
	}

	path := e.Path()
	if err := e.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return e.writeError(path, err)
	}
	if err := afero.WriteFile(e.fs, path, buf.Bytes(), 0o644); err != nil {
		return e.writeError(path, err)
	}

	e.logger.Debug("wrote override file", "path", path, "bytes", buf.Len())
	return nil
}

func (e *Editor) writeError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("write override file").
		WithResource(path).
		WithIssue(issue.OverrideFileWriteFailedId).
		Wrap(err).
		BuildError()
}

// requirePrivilege refuses mutations on privileged editors without root.
func (e *Editor) requirePrivilege(operation string) error {
	if e.priv == nil || e.priv.Elevated() {
		return nil
	}
	e.logger.Debug("mutation refused", "operation", operation)
	return &PrivilegeRequiredError{Operation: operation, Path: e.Path()}
}

func (e *Editor) key(section, setting string) schema.Key {
	return schema.Key{Instance: e.inst.Type, Section: section, Setting: setting}
}
