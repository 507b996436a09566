// SPDX-License-Identifier: MPL-2.0

// Package i18n turns message keys into display strings.
//
// Message keys are the English text itself, formatted with fmt verbs. Other
// languages register translations in the x/text message catalog (see catalog.go).
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLang is the fallback language.
var DefaultLang = language.English

// SupportedLangs are the languages with a catalog.
var SupportedLangs = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(SupportedLangs)

type (
	// Translator formats a message key with its arguments.
	Translator interface {
		Sprintf(key string, args ...any) string
	}

	printerTranslator struct {
		p *message.Printer
	}
)

// NewTranslator returns a translator for the given language.
func NewTranslator(tag language.Tag) Translator {
	return printerTranslator{p: message.NewPrinter(tag)}
}

// Default returns an English translator.
func Default() Translator {
	return NewTranslator(DefaultLang)
}

// Sprintf implements Translator.
func (t printerTranslator) Sprintf(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}

// MatchLanguage returns the best supported language for a locale string such
// as "de_DE.UTF-8" or "fr".
func MatchLanguage(locale string) language.Tag {
	// Strip encoding and modifier (e.g. .UTF-8, @euro)
	if i := strings.IndexAny(locale, ".@"); i != -1 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return DefaultLang
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLang
	}
	matched, _, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLang
	}
	base, _ := matched.Base()
	return language.Make(base.String())
}

// FromEnvironment returns a translator for the locale in LC_ALL, LC_MESSAGES or LANG.
func FromEnvironment() Translator {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return NewTranslator(MatchLanguage(v))
		}
	}
	return Default()
}
