// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ubuntu/ubuntuwsl/internal/editor"
	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Action is an entry of the session menu.
type Action string

const (
	// ActionEdit opens the form of one section.
	ActionEdit Action = "Edit"
	// ActionSave applies the pending values.
	ActionSave Action = "Save"
	// ActionReset restores every default after confirmation.
	ActionReset Action = "Reset"
	// ActionImport loads an exported file and saves it.
	ActionImport Action = "Import"
	// ActionExport writes the live configuration to a file.
	ActionExport Action = "Export"
	// ActionReload rereads the files and drops pending values.
	ActionReload Action = "Reload"
	// ActionHelp shows usage hints.
	ActionHelp Action = "Help"
	// ActionExit ends the session, asking first when values are pending.
	ActionExit Action = "Exit"
)

// Actions lists the menu in display order.
var Actions = []Action{
	ActionEdit, ActionSave, ActionReset, ActionImport,
	ActionExport, ActionReload, ActionHelp, ActionExit,
}

const menuTitle = "Ubuntu WSL Configuration"

type (
	// SessionOptions carries the collaborators of a Session.
	SessionOptions struct {
		// Fs is used for import and export files. Defaults to the OS file system.
		Fs afero.Fs
		// ExportDir is prepended to relative export names.
		ExportDir string
		// ExportFormat is used when an export name has no extension.
		ExportFormat editor.ExportFormat
		Translator   i18n.Translator
		Logger       *log.Logger
	}

	// Session is an interactive editing loop over one or more editors. Edits
	// stay pending until Save.
	Session struct {
		editors  []*editor.Editor
		prompter Prompter
		opts     SessionOptions
		pending  map[schema.Key]string
	}

	sectionRef struct {
		ed  *editor.Editor
		sec *schema.Section
	}
)

// NewSession creates a session. The editors are owned by the caller.
func NewSession(editors []*editor.Editor, prompter Prompter, opts SessionOptions) *Session {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = editor.FormatTOML
	}
	if opts.Translator == nil {
		opts.Translator = i18n.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		editors:  editors,
		prompter: prompter,
		opts:     opts,
		pending:  make(map[schema.Key]string),
	}
}

// Pending returns the number of unsaved edits.
func (s *Session) Pending() int { return len(s.pending) }

// Run shows the menu until the user exits. A *editor.PrivilegeRequiredError
// ends the session and is returned; other action failures are shown and the
// session continues.
func (s *Session) Run(ctx context.Context) error {
	labels := make([]string, len(Actions))
	for i, a := range Actions {
		labels[i] = string(a)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		title := menuTitle
		if n := len(s.pending); n > 0 {
			title += pendingStyle.Render(fmt.Sprintf(" (%d unsaved)", n))
		}
		choice, err := s.prompter.Select(title, labels)
		if errors.Is(err, ErrCancelled) {
			choice = string(ActionExit)
		} else if err != nil {
			return err
		}

		done, err := s.do(Action(choice))
		switch {
		case err == nil, errors.Is(err, ErrCancelled):
		case errors.Is(err, editor.ErrPrivilegeRequired):
			return err
		default:
			s.opts.Logger.Debug("action failed", "action", choice, "err", err)
			if merr := s.prompter.Message(choice, err.Error()); merr != nil {
				return merr
			}
		}
		if done {
			return nil
		}
	}
}

func (s *Session) do(a Action) (bool, error) {
	switch a {
	case ActionEdit:
		return false, s.edit()
	case ActionSave:
		return false, s.save()
	case ActionReset:
		return false, s.reset()
	case ActionImport:
		return false, s.importFile()
	case ActionExport:
		return false, s.exportFile()
	case ActionReload:
		return false, s.reload()
	case ActionHelp:
		return false, s.prompter.Message(string(a), s.helpText())
	case ActionExit:
		if len(s.pending) == 0 {
			return true, nil
		}
		return s.prompter.Confirm(s.opts.Translator.Sprintf(i18n.MsgDiscardConfirm))
	default:
		return false, fmt.Errorf("unknown action %q", a)
	}
}

func (s *Session) edit() error {
	var labels []string
	refs := make(map[string]sectionRef)
	for _, ed := range s.editors {
		inst := ed.Instance()
		for _, sec := range inst.Sections {
			label := inst.FriendlyName + " › " + sec.FriendlyName
			labels = append(labels, label)
			refs[label] = sectionRef{ed: ed, sec: sec}
		}
	}

	choice, err := s.prompter.Select(string(ActionEdit), labels)
	if err != nil {
		return err
	}
	ref, ok := refs[choice]
	if !ok {
		return fmt.Errorf("unknown section %q", choice)
	}

	form := SectionForm{
		Title:       ref.ed.Instance().FriendlyName + " › " + ref.sec.FriendlyName,
		Description: ref.ed.Path(),
	}
	live := make([]string, len(ref.sec.Settings))
	for i, st := range ref.sec.Settings {
		v, err := ref.ed.Get(ref.sec.Name, st.Name)
		if err != nil {
			return err
		}
		live[i] = v
		if p, ok := s.pending[s.key(ref.ed, ref.sec.Name, st.Name)]; ok {
			v = p
		}
		form.Fields = append(form.Fields, Field{
			Title:       st.FriendlyName,
			Description: st.Tooltip,
			Bool:        st.Type == schema.TypeBool,
			Value:       v,
			Validate:    validator(ref.ed, ref.sec.Name, st.Name),
		})
	}

	answers, err := s.prompter.EditSection(form)
	if err != nil {
		return err
	}
	for i, st := range ref.sec.Settings {
		k := s.key(ref.ed, ref.sec.Name, st.Name)
		if answers[i] == live[i] {
			delete(s.pending, k)
			continue
		}
		s.pending[k] = answers[i]
	}
	return nil
}

func validator(ed *editor.Editor, section, setting string) func(string) error {
	return func(v string) error {
		ok, msg, err := ed.Validate(section, setting, v)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(msg)
		}
		return nil
	}
}

// save applies pending edits in schema order, one write each.
func (s *Session) save() error {
	tr := s.opts.Translator
	if len(s.pending) == 0 {
		return s.prompter.Message(string(ActionSave), tr.Sprintf(i18n.MsgNothingToSave))
	}

	for _, ed := range s.editors {
		for _, sec := range ed.Instance().Sections {
			for _, st := range sec.Settings {
				k := s.key(ed, sec.Name, st.Name)
				v, ok := s.pending[k]
				if !ok {
					continue
				}
				if err := ed.Update(sec.Name, st.Name, v); err != nil {
					return err
				}
				delete(s.pending, k)
			}
		}
	}
	return s.prompter.Message(string(ActionSave), tr.Sprintf(i18n.MsgSaved))
}

func (s *Session) reset() error {
	ok, err := s.prompter.Confirm(s.opts.Translator.Sprintf(i18n.MsgResetConfirm))
	if err != nil || !ok {
		return err
	}
	for _, ed := range s.editors {
		if err := ed.ResetAll(); err != nil {
			return err
		}
	}
	clear(s.pending)
	return s.prompter.Message(string(ActionReset), s.opts.Translator.Sprintf(i18n.MsgResetDone))
}

func (s *Session) reload() error {
	clear(s.pending)
	for _, ed := range s.editors {
		if err := ed.Reload(); err != nil {
			return err
		}
	}
	return s.prompter.Message(string(ActionReload), s.opts.Translator.Sprintf(i18n.MsgReloaded))
}

func (s *Session) importFile() error {
	tr := s.opts.Translator
	ed, err := s.chooseEditor(string(ActionImport))
	if err != nil {
		return err
	}
	name, err := s.prompter.Input(string(ActionImport), tr.Sprintf(i18n.MsgImportPrompt))
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name == "" {
		return s.prompter.Message(string(ActionImport), tr.Sprintf(i18n.MsgNoFileName))
	}

	format, err := editor.FormatFromPath(name)
	if err != nil {
		format = s.opts.ExportFormat
	}
	f, err := s.opts.Fs.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := ed.Import(f, format); err != nil {
		return err
	}
	if err := ed.Save(); err != nil {
		return err
	}
	s.dropPending(ed)
	return s.prompter.Message(string(ActionImport), tr.Sprintf(i18n.MsgImported, name))
}

func (s *Session) exportFile() (err error) {
	ed, err := s.chooseEditor(string(ActionExport))
	if err != nil {
		return err
	}
	name, err := s.prompter.Input(string(ActionExport), s.opts.Translator.Sprintf(i18n.MsgExportPrompt))
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	format := s.opts.ExportFormat
	if f, ferr := editor.FormatFromPath(name); ferr == nil {
		format = f
	}
	path := ed.ExportFileName(name, format)
	if !filepath.IsAbs(path) && s.opts.ExportDir != "" {
		path = filepath.Join(s.opts.ExportDir, path)
	}

	if err := s.opts.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := s.opts.Fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := ed.Export(f, format); err != nil {
		return err
	}
	return s.prompter.Message(string(ActionExport), s.opts.Translator.Sprintf(i18n.MsgExported, path))
}

func (s *Session) chooseEditor(title string) (*editor.Editor, error) {
	if len(s.editors) == 1 {
		return s.editors[0], nil
	}
	names := make([]string, len(s.editors))
	for i, ed := range s.editors {
		names[i] = ed.Instance().FriendlyName
	}
	choice, err := s.prompter.Select(title, names)
	if err != nil {
		return nil, err
	}
	for _, ed := range s.editors {
		if ed.Instance().FriendlyName == choice {
			return ed, nil
		}
	}
	return nil, fmt.Errorf("unknown instance %q", choice)
}

func (s *Session) helpText() string {
	var b strings.Builder
	b.WriteString(s.opts.Translator.Sprintf(i18n.MsgHelp))
	for _, ed := range s.editors {
		inst := ed.Instance()
		fmt.Fprintf(&b, "\n\n%s (%s)", inst.FriendlyName, inst.FileLocation)
		for _, sec := range inst.Sections {
			for _, st := range sec.Settings {
				fmt.Fprintf(&b, "\n  %s.%s: %s", sec.Name, st.Name, st.Tooltip)
			}
		}
	}
	return b.String()
}

func (s *Session) dropPending(ed *editor.Editor) {
	for k := range s.pending {
		if k.Instance == ed.Instance().Type {
			delete(s.pending, k)
		}
	}
}

func (s *Session) key(ed *editor.Editor, section, setting string) schema.Key {
	return schema.Key{Instance: ed.Instance().Type, Section: section, Setting: setting}
}
