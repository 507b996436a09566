// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	PermissionDeniedId Id = iota + 1
	OverrideFileUnreadableId
	OverrideFileWriteFailedId
	UnknownKeyId
	InvalidValueId
	ImportFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // external documentation for the affected settings
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const wslConfigDocs HttpLink = "https://docs.microsoft.com/en-us/windows/wsl/wsl-config"

var (
	render = glamour.Render

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Root privileges required!

The WSL configuration files live in /etc and can only be changed by root.

## Things you can try:
- Run the same command with sudo:
~~~
$ sudo ubuntuwsl update wsl.automount.root /windir/
~~~
- Inspect values without privileges:
~~~
$ ubuntuwsl list
~~~`,
	}

	overrideFileUnreadableIssue = &Issue{
		id: OverrideFileUnreadableId,
		mdMsg: `
# Unable to read the configuration file!

The override file exists but could not be read or is not valid INI.

## Things you can try:
- Check that every line is a ` + "`[section]`" + ` header or a ` + "`key = value`" + ` pair
- Check the file permissions
- Start over from the defaults:
~~~
$ sudo ubuntuwsl reset --all wsl
~~~`,
		docLinks: []HttpLink{wslConfigDocs},
	}

	overrideFileWriteFailedIssue = &Issue{
		id: OverrideFileWriteFailedId,
		mdMsg: `
# Unable to write the configuration file!

The new configuration was prepared but the file could not be written.

## Things you can try:
- Make sure the file system is not mounted read-only
- Make sure there is free disk space
- Check that the file is not a directory`,
	}

	unknownKeyIssue = &Issue{
		id: UnknownKeyId,
		mdMsg: `
# Unknown setting!

Settings are addressed as ` + "`<instance>.<section>.<setting>`" + `, for example
` + "`ubuntu.Motd.wslnewsenabled`" + ` or ` + "`wsl.automount.root`" + `.
Section and setting names are case sensitive.

## Things you can try:
- List every known setting:
~~~
$ ubuntuwsl list --default
~~~`,
	}

	invalidValueIssue = &Issue{
		id: InvalidValueId,
		mdMsg: `
# Invalid value!

Every setting has a type and the value must match it:

- **bool**: ` + "`true`" + ` or ` + "`false`" + `
- **path**: an absolute path such as ` + "`/mnt/`" + `
- **mount options**: comma-separated options such as ` + "`metadata,uid=1000,umask=022`" + ``,
		docLinks: []HttpLink{wslConfigDocs + "#mount-options"},
	}

	importFailedIssue = &Issue{
		id: ImportFailedId,
		mdMsg: `
# Import failed!

The file could not be imported. Only files produced by ` + "`ubuntuwsl export`" + `
for the same instance can be imported.

## Things you can try:
- Check the file extension (.toml, .yaml or .yml) or pass ` + "`--format`" + `
- Export a fresh copy:
~~~
$ ubuntuwsl export wsl backup.toml
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load ubuntuwsl settings!

The settings file of the tool itself (not the WSL configuration) is invalid.

## Things you can try:
- Show where the file is:
~~~
$ ubuntuwsl config path
~~~
- Recreate it with default values:
~~~
$ ubuntuwsl config init --force
~~~`,
	}

	issues = map[Id]*Issue{
		permissionDeniedIssue.Id():        permissionDeniedIssue,
		overrideFileUnreadableIssue.Id():  overrideFileUnreadableIssue,
		overrideFileWriteFailedIssue.Id(): overrideFileWriteFailedIssue,
		unknownKeyIssue.Id():              unknownKeyIssue,
		invalidValueIssue.Id():            invalidValueIssue,
		importFailedIssue.Id():            importFailedIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
