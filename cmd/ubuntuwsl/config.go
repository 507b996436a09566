// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/ubuntu/ubuntuwsl/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `ubuntuwsl config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ubuntuwsl settings",
		Long: `Manage the settings of ubuntuwsl itself (not the WSL configuration files).

Settings are stored in $XDG_CONFIG_HOME/ubuntuwsl/config.toml
(~/.config/ubuntuwsl/config.toml by default). Every key can be overridden
with an UBUNTUWSL_<SECTION>_<KEY> environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fail(showConfig(cmd.Context(), app))
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, written, err := config.CreateDefaultConfig(config.LoadOptions{ConfigFilePath: app.flags.configPath}, force)
			if err != nil {
				return app.fail(err)
			}
			if !written {
				fmt.Fprintf(app.stdout, "%s %s already exists (use --force to replace it)\n", WarningStyle.Render("!"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created default settings at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "replace an existing settings file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: app.flags.configPath})
			if err != nil {
				return app.fail(err)
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	opts := config.LoadOptions{ConfigFilePath: app.flags.configPath}

	var (
		cfg    *config.Config
		source string
		err    error
	)
	if sp, ok := app.Config.(config.SourceProvider); ok {
		cfg, source, err = sp.LoadWithSource(ctx, opts)
	} else {
		cfg, err = app.Config.Load(ctx, opts)
	}
	if err != nil {
		return err
	}
	if source == "" {
		source = SubtitleStyle.Render("(using defaults)")
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Settings"))
	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s: %s\n\n", KeyStyle.Render("Settings file"), source)

	data, err := config.GenerateTOML(cfg)
	if err != nil {
		return err
	}
	_, err = app.stdout.Write(data)
	return err
}
