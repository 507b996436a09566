// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/ubuntu/ubuntuwsl/internal/editor"
	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the `ubuntuwsl validate` command.
func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [<instance>.<section>.<setting> <value> | <instance>...]",
		Short: "Check a value, or check the configuration files",
		Long: `With a key and a value, check the value against the type of the setting
without writing anything. Otherwise check every known setting of the given
configuration files (all of them by default).

Exits with status 1 when a check fails.`,
		Example: `  ubuntuwsl validate wsl.automount.root /windir/
  ubuntuwsl validate wsl`,
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			if len(args) == 2 {
				if key, kerr := schema.ParseKey(args[0]); kerr == nil {
					return app.fail(validateValue(app, ws, key, args[1]))
				}
			}
			return app.fail(checkFiles(app, ws, args))
		},
	}
}

func validateValue(app *App, ws *workspace, key schema.Key, value string) error {
	ed, err := ws.editor(key.Instance)
	if err != nil {
		return err
	}
	ok, msg, err := ed.Validate(key.Section, key.Setting, value)
	if err != nil {
		return err
	}
	if !ok {
		return &editor.ValidationError{Key: key, Value: value, Message: msg}
	}
	fmt.Fprintln(app.stdout, SuccessStyle.Render("✓")+" "+app.Translator.Sprintf(i18n.MsgOK))
	return nil
}

func checkFiles(app *App, ws *workspace, args []string) error {
	eds, err := ws.editors(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, ed := range eds {
		violations, err := ed.Check()
		if err != nil {
			return err
		}
		for _, v := range violations {
			key := schema.Key{Instance: ed.Instance().Type, Section: v.Section, Setting: v.Setting}
			fmt.Fprintf(app.stdout, "%s %s: %s\n", ErrorStyle.Render("✗"), key, v.Message)
		}
		failed += len(violations)
		if len(violations) == 0 {
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓"), ed.Path())
		}
	}

	if failed > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d invalid setting(s)", failed)}
	}
	return nil
}
