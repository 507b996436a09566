// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/ubuntu/ubuntuwsl/internal/tui"

	"github.com/spf13/cobra"
)

// newTUICommand creates the `ubuntuwsl tui` command.
func newTUICommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "tui [instance...]",
		Aliases: []string{"visual"},
		Short:   "Edit the configuration interactively",
		Long: `Edit the configuration files in an interactive terminal UI.

Edits stay pending until Save. Reset, Import and Export work like the
commands of the same name. Saving requires root.

The theme and accessible mode are read from ui.theme and ui.accessible.`,
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

			prompter := app.prompter
			if prompter == nil {
				cfg := tui.DefaultConfig()
				cfg.Theme = tui.Theme(ws.cfg.UI.Theme)
				cfg.Accessible = cfg.Accessible || ws.cfg.UI.Accessible
				prompter = tui.NewHuhPrompter(cfg)
			}

			session := tui.NewSession(eds, prompter, tui.SessionOptions{
				Fs:           app.fs,
				ExportDir:    string(ws.cfg.Export.Dir),
				ExportFormat: ws.cfg.Export.Format,
				Translator:   app.Translator,
				Logger:       ws.logger,
			})
			return app.fail(session.Run(cmd.Context()))
		},
	}
}
