// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected language.Tag
	}{
		{"en_US.UTF-8", language.English},
		{"de_DE.UTF-8", language.German},
		{"de_AT@euro", language.German},
		{"fr_FR", language.English}, // Fallback
		{"C", language.English},
		{"", language.English},
	}

	for _, tt := range tests {
		got := MatchLanguage(tt.locale)
		base, _ := got.Base()
		exp, _ := tt.expected.Base()
		assert.Equal(t, exp, base, "locale: %s", tt.locale)
	}
}

func TestTranslator_Sprintf(t *testing.T) {
	en := Default()
	assert.Equal(t, "bogus is not a valid mount option; ", en.Sprintf(MsgMountInvalidEntry, "bogus"))

	de := NewTranslator(language.German)
	assert.Equal(t, "bogus ist keine gültige Mount-Option; ", de.Sprintf(MsgMountInvalidEntry, "bogus"))
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	tr := FromEnvironment()
	assert.Equal(t, german[MsgOK], tr.Sprintf(MsgOK))
	assert.Equal(t, german[MsgPathInvalid], tr.Sprintf(MsgPathInvalid))
}
