// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/spf13/cobra"
)

// newUpdateCommand creates the `ubuntuwsl update` command.
func newUpdateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "update <instance>.<section>.<setting> <value>",
		Short: "Change one setting",
		Long: `Change one setting and write the configuration file.

The value is checked against the type of the setting first; an invalid value
leaves the file untouched. Writing requires root.`,
		Example:           `  sudo ubuntuwsl update wsl.automount.options "metadata,uid=1000"`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := schema.ParseKey(args[0])
			if err != nil {
				return app.fail(err)
			}
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			ed, err := ws.editor(key.Instance)
			if err != nil {
				return app.fail(err)
			}
			if err := ed.Update(key.Section, key.Setting, args[1]); err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("✓")+" "+app.Translator.Sprintf(i18n.MsgRestartRequired))
			return nil
		},
	}
}

// newResetCommand creates the `ubuntuwsl reset` command.
func newResetCommand(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset <instance>.<section>.<setting> | reset --all <instance>...",
		Short: "Restore default values",
		Long: `Restore the default value of one setting, or with --all rebuild whole
configuration files from defaults. --all drops keys that ubuntuwsl does not
know about. Writing requires root.`,
		Example: `  sudo ubuntuwsl reset wsl.automount.root
  sudo ubuntuwsl reset --all ubuntu wsl`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}

			if all {
				eds, err := ws.editors(args)
				if err != nil {
					return app.fail(err)
				}
				for _, ed := range eds {
					if err := ed.ResetAll(); err != nil {
						return app.fail(err)
					}
				}
			} else {
				key, err := schema.ParseKey(args[0])
				if err != nil {
					return app.fail(err)
				}
				ed, err := ws.editor(key.Instance)
				if err != nil {
					return app.fail(err)
				}
				if err := ed.Reset(key.Section, key.Setting); err != nil {
					return app.fail(err)
				}
			}

			fmt.Fprintln(app.stdout, SuccessStyle.Render("✓")+" "+app.Translator.Sprintf(i18n.MsgRestartRequired))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "reset every setting of the given instances")
	return cmd
}
