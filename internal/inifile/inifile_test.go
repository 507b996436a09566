// SPDX-License-Identifier: MPL-2.0

package inifile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestParse_PreservesOrderAndCase(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`[network]
generateResolvConf = false
generatehosts = true

[automount]
options = "metadata,uid=1000" # not a comment
root=/windir/
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"network", "automount"}, doc.Sections())
	assert.Equal(t, []string{"generateResolvConf", "generatehosts"}, doc.Keys("network"))

	v, ok := doc.Get("network", "generateResolvConf")
	require.True(t, ok)
	assert.Equal(t, "false", v)

	_, ok = doc.Get("network", "generateresolvconf")
	assert.False(t, ok, "keys are case sensitive")

	v, ok = doc.Get("automount", "options")
	require.True(t, ok)
	assert.Equal(t, `"metadata,uid=1000" # not a comment`, v)

	v, ok = doc.Get("automount", "root")
	require.True(t, ok)
	assert.Equal(t, "/windir/", v)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("[unterminated\nkey = value\n"))
	assert.Error(t, err)
}

func TestParse_DefaultSection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ini.DefaultSection, DefaultSection)

	doc, err := Parse([]byte("[a]\nk = v\n"))
	require.NoError(t, err)
	assert.False(t, doc.HasSection(DefaultSection))

	doc, err = Parse([]byte("loose = 1\n[a]\nk = v\n"))
	require.NoError(t, err)
	v, ok := doc.Get(DefaultSection, "loose")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	again, err := Parse(doc.Bytes())
	require.NoError(t, err)
	assert.True(t, doc.Equal(again))
}

func TestDocument_SetAndOverlay(t *testing.T) {
	t.Parallel()

	base := New()
	base.Set("interop", "enabled", "true")
	base.Set("interop", "appendwindowspath", "true")

	over := New()
	over.Set("foo", "bar", "baz")
	over.Set("interop", "appendwindowspath", "false")
	over.Set("interop", "extra", "1")

	base.Overlay(over)

	assert.Equal(t, []string{"interop", "foo"}, base.Sections())
	assert.Equal(t, []string{"enabled", "appendwindowspath", "extra"}, base.Keys("interop"))
	v, _ := base.Get("interop", "appendwindowspath")
	assert.Equal(t, "false", v)
	v, _ = base.Get("foo", "bar")
	assert.Equal(t, "baz", v)
}

func TestDocument_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Set("a", "k", "v")

	c := doc.Clone()
	require.True(t, doc.Equal(c))

	c.Set("a", "k", "changed")
	v, _ := doc.Get("a", "k")
	assert.Equal(t, "v", v)
	assert.False(t, doc.Equal(c))
}

func TestDocument_WriteTo(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Set("automount", "root", "/mnt/")
	doc.Set("automount", "options", "")
	doc.AddSection("empty")

	assert.Equal(t, "[automount]\nroot = /mnt/\noptions = \n\n[empty]\n\n", string(doc.Bytes()))

	again, err := Parse(doc.Bytes())
	require.NoError(t, err)
	assert.True(t, doc.Equal(again))
}

func TestDocument_WriteToQuotesAmbiguousValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, value, line string
	}{
		{"plain", "/mnt/", "k = /mnt/\n"},
		{"trailing backslash", `/mnt\`, "k = /mnt\\\n"},
		{"inline comment", "a # b", "k = a # b\n"},
		{"surrounding quotes", `"q"`, "k = \"q\"\n"},
		{"newline", "a\nb", "k = \"\"\"a\nb\"\"\"\n"},
		{"carriage return", "a\rb", "k = \"\"\"a\rb\"\"\"\n"},
		{"padding", " a ", "k = \"\"\" a \"\"\"\n"},
		{"backtick", "`a`", "k = \"\"\"`a`\"\"\"\n"},
		{"triple quotes", `"""a`, "k = \"\"\"\"\"\"a\"\"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := New()
			doc.Set("s", "k", tt.value)
			doc.Set("s", "next", "1")

			out := string(doc.Bytes())
			assert.Contains(t, out, tt.line)

			again, err := Parse(doc.Bytes())
			require.NoError(t, err)
			v, ok := again.Get("s", "k")
			require.True(t, ok)
			assert.Equal(t, tt.value, v)
			v, ok = again.Get("s", "next")
			require.True(t, ok)
			assert.Equal(t, "1", v)
		})
	}
}

func TestParse_IgnoresContinuation(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("[automount]\nroot = /mnt\\\noptions = metadata\n"))
	require.NoError(t, err)

	v, _ := doc.Get("automount", "root")
	assert.Equal(t, `/mnt\`, v)
	v, _ = doc.Get("automount", "options")
	assert.Equal(t, "metadata", v)
}
