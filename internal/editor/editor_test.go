// SPDX-License-Identifier: MPL-2.0

package editor_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ubuntu/ubuntuwsl/internal/editor"
	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/issue"
	"github.com/ubuntu/ubuntuwsl/internal/privilege"
	"github.com/ubuntu/ubuntuwsl/internal/schema"
	"github.com/ubuntu/ubuntuwsl/internal/testutil"
)

const mountDocs = "Please check https://docs.microsoft.com/en-us/windows/wsl/wsl-config#mount-options for correct valid input"

func newEditor(t *testing.T, fs afero.Fs, instance schema.InstanceType) *editor.Editor {
	t.Helper()
	ed, err := editor.New(schema.NewRegistry(), instance, editor.Options{
		Fs:    fs,
		Clock: testutil.NewFakeClock(testutil.ReferenceTime),
	})
	require.NoError(t, err)
	return ed
}

func TestNew_DefaultCompleteness(t *testing.T) {
	t.Parallel()

	reg := schema.NewRegistry()
	for _, inst := range reg.Instances() {
		ed := newEditor(t, afero.NewMemMapFs(), inst.Type)
		for _, sec := range inst.Sections {
			for _, s := range sec.Settings {
				got, err := ed.Get(sec.Name, s.Name)
				require.NoError(t, err)
				assert.Equal(t, s.Default, got, "%s.%s.%s", inst.Type, sec.Name, s.Name)
			}
		}
	}
}

func TestNew_UnknownInstance(t *testing.T) {
	t.Parallel()

	_, err := editor.New(schema.NewRegistry(), "windows", editor.Options{Fs: afero.NewMemMapFs()})
	assert.ErrorIs(t, err, schema.ErrUnknownInstance)
}

func TestNew_MergesOverrideFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultWSLFile, "[automount]\nroot = /windir/\n\n[network]\ngeneratehosts = false\n")

	ed := newEditor(t, fs, schema.InstanceWSL)

	tests := []struct {
		section, setting, want string
	}{
		{"automount", "root", "/windir/"},
		{"automount", "enabled", "true"},
		{"automount", "options", ""},
		{"network", "generatehosts", "false"},
		{"network", "generateresolvconf", "true"},
		{"interop", "enabled", "true"},
	}
	for _, tt := range tests {
		got, err := ed.Get(tt.section, tt.setting)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s.%s", tt.section, tt.setting)
	}
}

func TestNew_KeepsInvalidValuesFromFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultWSLFile, "[automount]\nenabled = yes\n")

	ed := newEditor(t, fs, schema.InstanceWSL)
	got, err := ed.Get("automount", "enabled")
	require.NoError(t, err)
	assert.Equal(t, "yes", got)

	violations, err := ed.Check()
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, editor.Violation{
		Section: "automount",
		Setting: "enabled",
		Value:   "yes",
		Message: "Input should be either 'true' or 'false'",
	}, violations[0])
}

func TestNew_UnparsableFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultWSLFile, "[automount\nroot = /mnt/\n")

	_, err := editor.New(schema.NewRegistry(), schema.InstanceWSL, editor.Options{Fs: fs})
	require.Error(t, err)

	var ae *issue.ActionableError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, schema.DefaultWSLFile, ae.Resource)
	assert.Equal(t, issue.OverrideFileUnreadableId, ae.IssueId)
}

func TestNew_FileLocationOverride(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, "/tmp/ubuntu.conf", "[Motd]\nwslnewsenabled = false\n")

	reg := schema.NewRegistry(schema.WithFileLocation(schema.InstanceUbuntu, "/tmp/ubuntu.conf"))
	ed, err := editor.New(reg, schema.InstanceUbuntu, editor.Options{Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ubuntu.conf", ed.Path())

	got, err := ed.Get("Motd", "wslnewsenabled")
	require.NoError(t, err)
	assert.Equal(t, "false", got)
}

func TestGet_KeyNotFound(t *testing.T) {
	t.Parallel()

	ed := newEditor(t, afero.NewMemMapFs(), schema.InstanceUbuntu)

	_, err := ed.Get("Motd", "nothing")
	require.ErrorIs(t, err, editor.ErrKeyNotFound)

	var knf *editor.KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	assert.Equal(t, "Motd", knf.Section)
	assert.Equal(t, "nothing", knf.Setting)

	_, err = ed.Get("motd", "wslnewsenabled")
	assert.ErrorIs(t, err, editor.ErrKeyNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultUbuntuFile, "[extra]\nkey = value\n\n[Motd]\nwslnewsenabled = false\n")
	ed := newEditor(t, fs, schema.InstanceUbuntu)

	entries := ed.List(false)
	require.Len(t, entries, 6)
	assert.Equal(t, editor.Entry{Section: "Motd", Setting: "wslnewsenabled", Value: "false", Known: true}, entries[0])
	assert.Equal(t, "guiintegration", entries[1].Setting)
	assert.Equal(t, "followwintheme", entries[4].Setting)
	assert.Equal(t, editor.Entry{Section: "extra", Setting: "key", Value: "value", Known: false}, entries[5])

	entries = ed.List(true)
	require.Len(t, entries, 5)
	assert.Equal(t, "true", entries[0].Value)

	// The rebuild is kept in memory but never written.
	got, err := ed.Get("Motd", "wslnewsenabled")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
	assert.Contains(t, testutil.MustReadFile(t, fs, schema.DefaultUbuntuFile), "wslnewsenabled = false")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ed := newEditor(t, afero.NewMemMapFs(), schema.InstanceWSL)

	tests := []struct {
		name    string
		section string
		setting string
		input   string
		valid   bool
		message string
	}{
		{"bool true", "network", "generatehosts", "true", true, ""},
		{"bool false", "network", "generatehosts", "false", true, ""},
		{"bool capitalized", "network", "generatehosts", "True", false, "Input should be either 'true' or 'false'"},
		{"bool yes", "network", "generatehosts", "yes", false, "Input should be either 'true' or 'false'"},
		{"bool empty", "network", "generatehosts", "", false, "Input should be either 'true' or 'false'"},
		{"path home", "automount", "root", "/home/user", true, ""},
		{"path root", "automount", "root", "/", true, ""},
		{"path trailing slash", "automount", "root", "/mnt/", true, ""},
		{"path empty", "automount", "root", "", false, "Input should be a valid UNIX path"},
		{"path relative", "automount", "root", "relative/path", false, "Input should be a valid UNIX path"},
		{"path with space", "automount", "root", "/has space", false, "Input should be a valid UNIX path"},
		{"mount empty", "automount", "options", "", true, ""},
		{"mount flags", "automount", "options", "ro,noexec", true, ""},
		{"mount drvfs", "automount", "options", "metadata,uid=1000,gid=1000,umask=022,case=dir", true, ""},
		{"mount context", "automount", "options", "fscontext=system_u", true, ""},
		{"mount empty entry", "automount", "options", "ro,,noexec", false, "Invalid Input: an empty entry detected; " + mountDocs},
		{"mount trailing comma", "automount", "options", "ro,", false, "Invalid Input: an empty entry detected; " + mountDocs},
		{"mount bogus", "automount", "options", "ro,bogusopt", false, "Invalid Input: bogusopt is not a valid mount option; " + mountDocs},
		{"mount partial match", "automount", "options", "rox", false, "Invalid Input: rox is not a valid mount option; " + mountDocs},
		{"mount bad case", "automount", "options", "case=upper", false, "Invalid Input: case=upper is not a valid mount option; " + mountDocs},
		{
			"mount every failure listed", "automount", "options", "uid=abc,,nope", false,
			"Invalid Input: uid=abc is not a valid mount option; an empty entry detected; nope is not a valid mount option; " + mountDocs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, msg, err := ed.Validate(tt.section, tt.setting, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidate_UnknownSetting(t *testing.T) {
	t.Parallel()

	ed := newEditor(t, afero.NewMemMapFs(), schema.InstanceWSL)

	_, _, err := ed.Validate("automount", "nope", "true")
	assert.ErrorIs(t, err, schema.ErrUnknownSetting)
}

func TestValidate_Translated(t *testing.T) {
	t.Parallel()

	ed, err := editor.New(schema.NewRegistry(), schema.InstanceWSL, editor.Options{
		Fs:         afero.NewMemMapFs(),
		Translator: i18n.NewTranslator(language.German),
	})
	require.NoError(t, err)

	_, msg, err := ed.Validate("network", "generatehosts", "ja")
	require.NoError(t, err)
	assert.Equal(t, "Die Eingabe muss entweder 'true' oder 'false' sein", msg)

	_, msg, err = ed.Validate("automount", "options", "bogus")
	require.NoError(t, err)
	assert.Contains(t, msg, "bogus ist keine gültige Mount-Option; ")
}

func TestUpdate_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ed := newEditor(t, fs, schema.InstanceWSL)

	require.NoError(t, ed.Update("automount", "root", "/windir/"))
	require.NoError(t, ed.Update("automount", "options", "metadata,umask=022"))

	fresh := newEditor(t, fs, schema.InstanceWSL)
	got, err := fresh.Get("automount", "root")
	require.NoError(t, err)
	assert.Equal(t, "/windir/", got)
	got, err = fresh.Get("automount", "options")
	require.NoError(t, err)
	assert.Equal(t, "metadata,umask=022", got)
}

func TestUpdate_LiteralValuesRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"trailing backslash", `/mnt\`},
		{"hash", "/mnt/a#b"},
		{"semicolon", "/mnt/a;b"},
		{"inner quotes", `/mnt/"quoted"`},
		{"backticks", "/mnt/`x`"},
		{"triple quotes", `/mnt/"""`},
		{"delimiter", "/mnt/a=b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			ed := newEditor(t, fs, schema.InstanceWSL)
			require.NoError(t, ed.Update("automount", "options", "metadata"))
			require.NoError(t, ed.Update("automount", "root", tt.value))

			fresh := newEditor(t, fs, schema.InstanceWSL)
			got, err := fresh.Get("automount", "root")
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)

			got, err = fresh.Get("automount", "options")
			require.NoError(t, err)
			assert.Equal(t, "metadata", got, "following key must survive")
		})
	}
}

func TestUpdate_RejectsControlCharacters(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"/a\nb", "/a\rb", "/a\tb", "/mnt/\n"} {
		fs := afero.NewMemMapFs()
		ed := newEditor(t, fs, schema.InstanceWSL)
		require.NoError(t, ed.Update("automount", "root", "/windir/"))

		err := ed.Update("automount", "root", value)
		require.ErrorIs(t, err, editor.ErrValidation, "%q", value)

		var ve *editor.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, i18n.MsgControlCharacter, ve.Message)

		fresh := newEditor(t, fs, schema.InstanceWSL)
		got, err := fresh.Get("automount", "root")
		require.NoError(t, err)
		assert.Equal(t, "/windir/", got)
	}
}

func TestPassThrough_LiteralValuesRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultWSLFile, "[foo]\n"+
		"slash = C:\\dir\\\n"+
		"hash = a # b\n"+
		"semi = ; x\n"+
		"quoted = \"q\"\n"+
		"padded = \"\"\"  pad  \"\"\"\n"+
		"cr = \"\"\"a\rb\"\"\"\n"+
		"multi = \"\"\"line1\nline2\"\"\"\n"+
		"next = kept\n")
	ed := newEditor(t, fs, schema.InstanceWSL)

	want := map[string]string{
		"slash":  `C:\dir\`,
		"hash":   "a # b",
		"semi":   "; x",
		"quoted": `"q"`,
		"padded": "  pad  ",
		"cr":     "a\rb",
		"multi":  "line1\nline2",
		"next":   "kept",
	}

	// Values round-trip through two writes, so the writer reads its own output.
	for range 2 {
		require.NoError(t, ed.Update("network", "generatehosts", "false"))
		require.NoError(t, ed.Update("network", "generatehosts", "true"))

		fresh := newEditor(t, fs, schema.InstanceWSL)
		for key, value := range want {
			got, err := fresh.Get("foo", key)
			require.NoError(t, err, key)
			assert.Equal(t, value, got, key)
		}
		ed = fresh
	}
}

func TestUpdate_WritesWholeConfiguration(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ed := newEditor(t, fs, schema.InstanceUbuntu)

	require.NoError(t, ed.Update("GUI", "followwintheme", "true"))

	want := "[Motd]\nwslnewsenabled = true\n\n" +
		"[Interop]\nguiintegration = false\naudiointegration = false\nadvancedipdetection = false\n\n" +
		"[GUI]\nfollowwintheme = true\n\n"
	assert.Equal(t, want, testutil.MustReadFile(t, fs, schema.DefaultUbuntuFile))
}

func TestUpdate_ValidationFailure(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ed := newEditor(t, fs, schema.InstanceWSL)

	err := ed.Update("automount", "options", "ro,bogusopt")
	require.ErrorIs(t, err, editor.ErrValidation)

	var ve *editor.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "wsl.automount.options", ve.Key.String())
	assert.Contains(t, ve.Message, "bogusopt is not a valid mount option")

	got, err := ed.Get("automount", "options")
	require.NoError(t, err)
	assert.Empty(t, got)

	exists, err := afero.Exists(fs, schema.DefaultWSLFile)
	require.NoError(t, err)
	assert.False(t, exists, "nothing should be written on validation failure")
}

func TestUpdate_UnknownSetting(t *testing.T) {
	t.Parallel()

	ed := newEditor(t, afero.NewMemMapFs(), schema.InstanceWSL)
	assert.ErrorIs(t, ed.Update("foo", "bar", "baz"), schema.ErrUnknownSetting)
}

func TestUpdate_WriteFailureRollsBack(t *testing.T) {
	t.Parallel()

	ed := newEditor(t, afero.NewReadOnlyFs(afero.NewMemMapFs()), schema.InstanceWSL)

	err := ed.Update("automount", "root", "/windir/")
	require.Error(t, err)

	var ae *issue.ActionableError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, issue.OverrideFileWriteFailedId, ae.IssueId)

	got, err := ed.Get("automount", "root")
	require.NoError(t, err)
	assert.Equal(t, "/mnt/", got)
}

func TestReset_RestoresDefault(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ed := newEditor(t, fs, schema.InstanceWSL)

	for _, v := range []string{"/windir/", "/mnt/"} {
		require.NoError(t, ed.Update("automount", "root", v))
		require.NoError(t, ed.Reset("automount", "root"))

		got, err := ed.Get("automount", "root")
		require.NoError(t, err)
		assert.Equal(t, "/mnt/", got)
	}

	fresh := newEditor(t, fs, schema.InstanceWSL)
	got, err := fresh.Get("automount", "root")
	require.NoError(t, err)
	assert.Equal(t, "/mnt/", got)

	assert.ErrorIs(t, ed.Reset("automount", "nope"), schema.ErrUnknownSetting)
}

func TestResetAll_Idempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultWSLFile, "[automount]\nroot = /windir/\n\n[foo]\nbar = baz\n")
	ed := newEditor(t, fs, schema.InstanceWSL)

	require.NoError(t, ed.ResetAll())
	once := ed.Snapshot()
	onceFile := testutil.MustReadFile(t, fs, schema.DefaultWSLFile)

	require.NoError(t, ed.ResetAll())
	assert.True(t, once.Equal(ed.Snapshot()))
	assert.Equal(t, onceFile, testutil.MustReadFile(t, fs, schema.DefaultWSLFile))

	assert.NotContains(t, onceFile, "[foo]")
	assert.Contains(t, onceFile, "root = /mnt/\n")
}

func TestPassThrough_SurvivesUpdateAndReload(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fs, schema.DefaultWSLFile, "[foo]\nbar = baz\n\n[automount]\nroot = /windir/\ncustom = 1 # kept\n")
	ed := newEditor(t, fs, schema.InstanceWSL)

	got, err := ed.Get("foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "baz", got)

	require.NoError(t, ed.Update("network", "generatehosts", "false"))
	require.NoError(t, ed.Reload())

	got, err = ed.Get("foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "baz", got)
	got, err = ed.Get("automount", "custom")
	require.NoError(t, err)
	assert.Equal(t, "1 # kept", got)

	content := testutil.MustReadFile(t, fs, schema.DefaultWSLFile)
	assert.Contains(t, content, "[foo]\nbar = baz\n")
	assert.Less(t, strings.Index(content, "[interop]"), strings.Index(content, "[foo]"), "pass-through sections follow schema sections")
}

func TestPrivilege(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	denied, err := editor.New(schema.NewRegistry(), schema.InstanceWSL, editor.Options{
		Fs:        fs,
		Privilege: privilege.Static(false),
	})
	require.NoError(t, err)

	mutations := map[string]func() error{
		"update":    func() error { return denied.Update("automount", "root", "/windir/") },
		"reset":     func() error { return denied.Reset("automount", "root") },
		"reset all": denied.ResetAll,
		"save":      denied.Save,
	}
	for name, mutate := range mutations {
		err := mutate()
		require.ErrorIs(t, err, editor.ErrPrivilegeRequired, name)

		var pre *editor.PrivilegeRequiredError
		require.ErrorAs(t, err, &pre)
		assert.Equal(t, name, pre.Operation)
		assert.Equal(t, schema.DefaultWSLFile, pre.Path)
	}

	exists, err := afero.Exists(fs, schema.DefaultWSLFile)
	require.NoError(t, err)
	assert.False(t, exists)

	// Reads and validation need no privilege.
	_, err = denied.Get("automount", "root")
	require.NoError(t, err)
	_, _, err = denied.Validate("automount", "root", "/x")
	require.NoError(t, err)

	allowed, err := editor.New(schema.NewRegistry(), schema.InstanceWSL, editor.Options{
		Fs:        fs,
		Privilege: privilege.Static(true),
	})
	require.NoError(t, err)
	require.NoError(t, allowed.Update("automount", "root", "/windir/"))
}

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []editor.ExportFormat{editor.FormatTOML, editor.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			testutil.MustWriteFile(t, fs, schema.DefaultWSLFile,
				"[automount]\nroot = /windir/\noptions = metadata,uid=1000\n\n[foo]\nbar = baz\nempty = \n")
			src := newEditor(t, fs, schema.InstanceWSL)

			var buf bytes.Buffer
			require.NoError(t, src.Export(&buf, format))

			dst := newEditor(t, afero.NewMemMapFs(), schema.InstanceWSL)
			require.NoError(t, dst.Import(&buf, format))

			assert.True(t, src.Snapshot().Equal(dst.Snapshot()), "imported configuration differs:\n%s\nwant:\n%s",
				dst.Snapshot().Bytes(), src.Snapshot().Bytes())
		})
	}
}

func TestImport_DoesNotWriteUntilSave(t *testing.T) {
	t.Parallel()

	src := newEditor(t, afero.NewMemMapFs(), schema.InstanceUbuntu)
	require.NoError(t, src.Update("Motd", "wslnewsenabled", "false"))
	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf, editor.FormatYAML))

	fs := afero.NewMemMapFs()
	dst := newEditor(t, fs, schema.InstanceUbuntu)
	require.NoError(t, dst.Import(&buf, editor.FormatYAML))

	exists, err := afero.Exists(fs, schema.DefaultUbuntuFile)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, dst.Save())
	assert.Contains(t, testutil.MustReadFile(t, fs, schema.DefaultUbuntuFile), "wslnewsenabled = false\n")
}

func TestImport_Rejects(t *testing.T) {
	t.Parallel()

	ubuntu := newEditor(t, afero.NewMemMapFs(), schema.InstanceUbuntu)
	var buf bytes.Buffer
	require.NoError(t, ubuntu.Export(&buf, editor.FormatTOML))

	wsl := newEditor(t, afero.NewMemMapFs(), schema.InstanceWSL)
	before := wsl.Snapshot()

	err := wsl.Import(&buf, editor.FormatTOML)
	assert.ErrorIs(t, err, editor.ErrInstanceMismatch)
	assert.True(t, before.Equal(wsl.Snapshot()))

	err = wsl.Import(strings.NewReader("not: [valid"), editor.FormatYAML)
	assert.Error(t, err)
	assert.True(t, before.Equal(wsl.Snapshot()))

	err = wsl.Import(strings.NewReader(""), "ini")
	assert.ErrorIs(t, err, editor.ErrInvalidExportFormat)
}

func TestExportFileName(t *testing.T) {
	t.Parallel()

	ed := newEditor(t, afero.NewMemMapFs(), schema.InstanceWSL)

	assert.Equal(t, "wsl-20200101-000000.toml", ed.ExportFileName("", editor.FormatTOML))
	assert.Equal(t, "backup.yaml", ed.ExportFileName("backup", editor.FormatYAML))
	assert.Equal(t, "backup.toml", ed.ExportFileName("backup.toml", editor.FormatYAML))
	assert.Equal(t, "/tmp/out/backup.toml", ed.ExportFileName("/tmp/out/backup", editor.FormatTOML))
}

func TestParseExportFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    editor.ExportFormat
		wantErr bool
	}{
		{"toml", editor.FormatTOML, false},
		{"TOML", editor.FormatTOML, false},
		{"yaml", editor.FormatYAML, false},
		{"yml", editor.FormatYAML, false},
		{"json", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := editor.ParseExportFormat(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, editor.ErrInvalidExportFormat), "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	f, err := editor.FormatFromPath("/tmp/wsl-backup.yml")
	require.NoError(t, err)
	assert.Equal(t, editor.FormatYAML, f)

	_, err = editor.FormatFromPath("/tmp/wsl-backup")
	assert.ErrorIs(t, err, editor.ErrInvalidExportFormat)
}
