// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/issue"
	"github.com/ubuntu/ubuntuwsl/internal/schema"

	"github.com/spf13/cobra"
)

// newExportCommand creates the `ubuntuwsl export` command.
func newExportCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <instance> [file]",
		Short: "Save a copy of one configuration file",
		Long: `Save the current configuration of one instance as TOML or YAML.

Without a file name the copy is named <instance>-<timestamp>.<format>. Relative
names are placed in export.dir when it is configured. The format is taken from
--format, then from the file extension, then from export.format.`,
		Example: `  ubuntuwsl export wsl
  ubuntuwsl export ubuntu backup.yaml`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeInstances,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			ed, err := ws.editor(schema.InstanceType(args[0]))
			if err != nil {
				return app.fail(err)
			}

			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			f, err := ws.exportFormat(format, name)
			if err != nil {
				return app.fail(err)
			}
			path := ed.ExportFileName(name, f)
			if !filepath.IsAbs(path) && ws.cfg.Export.Dir != "" {
				path = filepath.Join(string(ws.cfg.Export.Dir), path)
			}

			if err := app.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return app.fail(err)
			}
			out, err := app.fs.Create(path)
			if err != nil {
				return app.fail(err)
			}
			defer func() {
				if cerr := out.Close(); cerr != nil && err == nil {
					err = app.fail(cerr)
				}
			}()
			if err := ed.Export(out, f); err != nil {
				return app.fail(err)
			}

			fmt.Fprintln(app.stdout, SuccessStyle.Render("✓")+" "+app.Translator.Sprintf(i18n.MsgExported, path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "file format (toml|yaml)")
	return cmd
}

// newImportCommand creates the `ubuntuwsl import` command.
func newImportCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <instance> <file>",
		Short: "Replace one configuration file with an exported copy",
		Long: `Replace the configuration of one instance with a file written by
'ubuntuwsl export' and write it. Writing requires root.`,
		Example:           `  sudo ubuntuwsl import wsl backup.yaml`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeInstances,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			ed, err := ws.editor(schema.InstanceType(args[0]))
			if err != nil {
				return app.fail(err)
			}
			f, err := ws.exportFormat(format, args[1])
			if err != nil {
				return app.fail(err)
			}

			in, err := app.fs.Open(args[1])
			if err != nil {
				return app.fail(importError(args[1], err))
			}
			defer in.Close()

			if err := ed.Import(in, f); err != nil {
				return app.fail(importError(args[1], err))
			}
			if err := ed.Save(); err != nil {
				return app.fail(err)
			}

			fmt.Fprintln(app.stdout, SuccessStyle.Render("✓")+" "+app.Translator.Sprintf(i18n.MsgImported, args[1]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "file format (toml|yaml)")
	return cmd
}

func importError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("import configuration").
		WithResource(path).
		WithIssue(issue.ImportFailedId).
		WithSuggestion("Only files written by 'ubuntuwsl export' for the same instance can be imported").
		Wrap(err).
		BuildError()
}
