// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ubuntu/ubuntuwsl/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ubuntuwsl",
		Short: "View and edit the WSL configuration of Ubuntu",
		Long: TitleStyle.Render("ubuntuwsl") + SubtitleStyle.Render(" - View and edit the WSL configuration of Ubuntu") + `

ubuntuwsl reads and writes /etc/ubuntu-wsl.conf (instance "ubuntu") and
/etc/wsl.conf (instance "wsl"). Every value is checked against its type
before it is written. Settings are addressed as <instance>.<section>.<setting>.

` + SubtitleStyle.Render("Examples:") + `
  ubuntuwsl list                              Show every setting
  ubuntuwsl show wsl.automount.root           Show one setting
  sudo ubuntuwsl update wsl.automount.root /windir/
  sudo ubuntuwsl reset --all ubuntu           Restore the defaults
  ubuntuwsl export wsl backup.yaml            Save a copy
  sudo ubuntuwsl tui                          Edit interactively`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	root.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/ubuntuwsl/config.toml)")

	root.AddCommand(
		newListCommand(app),
		newShowCommand(app),
		newUpdateCommand(app),
		newResetCommand(app),
		newValidateCommand(app),
		newExportCommand(app),
		newImportCommand(app),
		newTUICommand(app),
		newConfigCommand(app),
		newCompletionCommand(),
	)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the root command. It is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
