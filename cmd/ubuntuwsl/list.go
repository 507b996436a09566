// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/ubuntu/ubuntuwsl/internal/editor"
	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/spf13/cobra"
)

type showFlags struct {
	short     bool
	isDefault bool
}

func (f *showFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.short, "short", "s", false, "print values only")
	cmd.Flags().BoolVarP(&f.isDefault, "default", "d", false, "print default values instead of the current ones")
}

// newListCommand creates the `ubuntuwsl list` command.
func newListCommand(app *App) *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "list [instance...]",
		Short: "List every setting of the configuration files",
		Long: `List every setting of the configuration files as <instance>.<section>.<setting>: <value>.

Settings are listed in schema order, followed by keys that ubuntuwsl does not
know about but keeps when writing.`,
		Example: `  ubuntuwsl list
  ubuntuwsl list wsl --default`,
		ValidArgsFunction: completeInstances,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			eds, err := ws.editors(args)
			if err != nil {
				return app.fail(err)
			}
			for _, ed := range eds {
				for _, e := range ed.List(flags.isDefault) {
					printSetting(app.stdout, ed.Instance().Type, e, flags.short)
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// newShowCommand creates the `ubuntuwsl show` command.
func newShowCommand(app *App) *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "show <instance>.<section>[.<setting>]",
		Short: "Show one setting or one section",
		Example: `  ubuntuwsl show wsl.automount.root
  ubuntuwsl show ubuntu.Interop --short`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			return app.fail(show(app.stdout, ws, args[0], flags))
		},
	}
	flags.register(cmd)
	return cmd
}

func show(w io.Writer, ws *workspace, arg string, flags showFlags) error {
	key, err := schema.ParseKey(arg)
	if err != nil {
		// <instance>.<section> lists the whole section.
		section, serr := schema.ParseKey(arg + ".x")
		if serr != nil {
			return err
		}
		key = schema.Key{Instance: section.Instance, Section: section.Section}
	}

	ed, err := ws.editor(key.Instance)
	if err != nil {
		return err
	}

	found := false
	for _, e := range ed.List(flags.isDefault) {
		if e.Section != key.Section || (key.Setting != "" && e.Setting != key.Setting) {
			continue
		}
		found = true
		printSetting(w, key.Instance, e, flags.short)
	}
	if !found {
		return &editor.KeyNotFoundError{Instance: key.Instance, Section: key.Section, Setting: key.Setting}
	}
	return nil
}

func printSetting(w io.Writer, instance schema.InstanceType, e editor.Entry, short bool) {
	if short {
		fmt.Fprintln(w, e.Value)
		return
	}
	key := schema.Key{Instance: instance, Section: e.Section, Setting: e.Setting}
	fmt.Fprintf(w, "%s: %s\n", key, e.Value)
}
