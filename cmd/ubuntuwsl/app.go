// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ubuntu/ubuntuwsl/internal/config"
	"github.com/ubuntu/ubuntuwsl/internal/editor"
	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/privilege"
	"github.com/ubuntu/ubuntuwsl/internal/schema"
	"github.com/ubuntu/ubuntuwsl/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App and builds editors
	// through it.
	App struct {
		Config     ConfigProvider
		Translator i18n.Translator
		fs         afero.Fs
		privilege  privilege.Checker
		prompter   tui.Prompter
		clock      editor.Clock
		stdin      io.Reader
		stdout     io.Writer
		stderr     io.Writer
		flags      globalFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config     ConfigProvider
		Translator i18n.Translator
		// Fs holds the WSL configuration files and import/export files.
		Fs afero.Fs
		// Privilege overrides the checker chosen from privilege.required.
		Privilege privilege.Checker
		// Prompter replaces the huh prompter of the tui command.
		Prompter tui.Prompter
		Clock    editor.Clock
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	globalFlags struct {
		verbose    bool
		configPath string
	}

	// workspace is the per-invocation state shared by the handlers of one command.
	workspace struct {
		app      *App
		cfg      *config.Config
		registry *schema.Registry
		logger   *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Translator == nil {
		deps.Translator = i18n.FromEnvironment()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	return &App{
		Config:     deps.Config,
		Translator: deps.Translator,
		fs:         deps.Fs,
		privilege:  deps.Privilege,
		prompter:   deps.Prompter,
		clock:      deps.Clock,
		stdin:      deps.Stdin,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}, nil
}

// open loads the tool settings and builds the registry for one command. A
// broken default settings file falls back to defaults with a warning; a broken
// --config file is an error.
func (a *App) open(ctx context.Context) (*workspace, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		if a.flags.configPath != "" {
			return nil, err
		}
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}

	var opts []schema.Option
	if cfg.Files.Ubuntu != "" {
		opts = append(opts, schema.WithFileLocation(schema.InstanceUbuntu, string(cfg.Files.Ubuntu)))
	}
	if cfg.Files.WSL != "" {
		opts = append(opts, schema.WithFileLocation(schema.InstanceWSL, string(cfg.Files.WSL)))
	}

	return &workspace{
		app:      a,
		cfg:      cfg,
		registry: schema.NewRegistry(opts...),
		logger:   newLogger(a.stderr, cfg.Log.Level, a.flags.verbose),
	}, nil
}

func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: config.AppName})
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func (w *workspace) checker() privilege.Checker {
	if w.app.privilege != nil {
		return w.app.privilege
	}
	if w.cfg.Privilege.Required {
		return privilege.System()
	}
	return nil
}

// editor builds the editor of one instance.
func (w *workspace) editor(instance schema.InstanceType) (*editor.Editor, error) {
	return editor.New(w.registry, instance, editor.Options{
		Fs:         w.app.fs,
		Privilege:  w.checker(),
		Translator: w.app.Translator,
		Logger:     w.logger,
		Clock:      w.app.clock,
	})
}

// editors builds the editors named by args, or every instance when args is empty.
func (w *workspace) editors(args []string) ([]*editor.Editor, error) {
	if len(args) == 0 {
		for _, inst := range w.registry.Instances() {
			args = append(args, inst.Type.String())
		}
	}

	eds := make([]*editor.Editor, 0, len(args))
	for _, arg := range args {
		ed, err := w.editor(schema.InstanceType(arg))
		if err != nil {
			return nil, err
		}
		eds = append(eds, ed)
	}
	return eds, nil
}

// exportFormat resolves the format of an import or export file: the flag wins,
// then the file extension, then export.format.
func (w *workspace) exportFormat(flag, path string) (editor.ExportFormat, error) {
	if flag != "" {
		return editor.ParseExportFormat(flag)
	}
	if f, err := editor.FormatFromPath(path); err == nil {
		return f, nil
	}
	if w.cfg.Export.Format != "" {
		return w.cfg.Export.Format, nil
	}
	return editor.FormatTOML, nil
}
