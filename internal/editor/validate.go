// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/schema"
)

var (
	pathPattern = regexp.MustCompile(`^(/[^/ ]*)+/?$`)

	// DrvFs specific options followed by the generic Linux mount options.
	mountOptionPattern = regexp.MustCompile(`^(?:` + strings.Join([]string{
		`case=(?:dir|force|off)`, `metadata`, `[ug]id=\d+`, `[ufd]mask=\d+`,
		`async`, `(?:no)?atime`, `(?:no)?auto`, `(?:fs|def|root)?context=\w+`, `(?:no)?dev`,
		`(?:no)?diratime`, `dirsync`, `(?:no)?exec`, `group`, `(?:no)?iversion`, `(?:no)?mand`,
		`_netdev`, `nofail`, `(?:no)?relatime`, `(?:no)?strictatime`, `(?:no)?suid`, `owner`,
		`remount`, `ro`, `rw`, `_rnetdev`, `sync`, `(?:no)?user`, `users`,
	}, "|") + `)$`)
)

// Violation is a live value that fails its declared type.
type Violation struct {
	Section string
	Setting string
	Value   string
	Message string
}

// Validate checks input against the declared type of a setting. The message
// is empty when the input is valid. Unknown settings and unsupported schema
// types are returned as errors.
func (e *Editor) Validate(section, setting, input string) (bool, string, error) {
	def, err := e.registry.LookupSetting(e.inst.Type, section, setting)
	if err != nil {
		return false, "", err
	}
	if strings.IndexFunc(input, unicode.IsControl) >= 0 {
		return false, e.tr.Sprintf(i18n.MsgControlCharacter), nil
	}

	switch def.Type {
	case schema.TypeBool:
		if input == "true" || input == "false" {
			return true, "", nil
		}
		return false, e.tr.Sprintf(i18n.MsgBoolInvalid), nil
	case schema.TypePath:
		if pathPattern.MatchString(input) {
			return true, "", nil
		}
		return false, e.tr.Sprintf(i18n.MsgPathInvalid), nil
	case schema.TypeMountOptionList:
		ok, msg := e.validateMountOptions(input)
		return ok, msg, nil
	default:
		return false, "", &UnknownSettingTypeError{Key: e.key(section, setting), Type: def.Type}
	}
}

// validateMountOptions reports every failing entry, not only the first one.
func (e *Editor) validateMountOptions(input string) (bool, string) {
	if input == "" {
		return true, ""
	}

	var diag strings.Builder
	valid := true
	for _, opt := range strings.Split(input, ",") {
		switch {
		case opt == "":
			diag.WriteString(e.tr.Sprintf(i18n.MsgMountEmptyEntry))
			valid = false
		case !mountOptionPattern.MatchString(opt):
			diag.WriteString(e.tr.Sprintf(i18n.MsgMountInvalidEntry, opt))
			valid = false
		}
	}
	if valid {
		return true, ""
	}
	return false, e.tr.Sprintf(i18n.MsgMountInvalid, diag.String())
}

// Check validates every schema setting of the live configuration. Pass-through
// keys are never checked.
func (e *Editor) Check() ([]Violation, error) {
	var out []Violation
	for _, sec := range e.inst.Sections {
		for _, s := range sec.Settings {
			v, err := e.Get(sec.Name, s.Name)
			if err != nil {
				return nil, err
			}
			ok, msg, err := e.Validate(sec.Name, s.Name, v)
			if err != nil {
				return nil, err
			}
			if !ok {
				out = append(out, Violation{Section: sec.Name, Setting: s.Name, Value: v, Message: msg})
			}
		}
	}
	return out, nil
}
