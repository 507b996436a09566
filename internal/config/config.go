// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ubuntu/ubuntuwsl/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "ubuntuwsl"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. UBUNTUWSL_LOG_LEVEL.
	EnvPrefix = "UBUNTUWSL"
)

// ConfigDir returns $XDG_CONFIG_HOME/ubuntuwsl, defaulting to ~/.config/ubuntuwsl.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// ResolvePath returns the config file that Load reads for opts, whether or not
// it exists.
func ResolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}
	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading. Missing default
// files are not an error; a missing explicit file is.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetConfigType(ConfigFileExt)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.accessible", defaults.UI.Accessible)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("export.format", defaults.Export.Format)
	v.SetDefault("export.dir", defaults.Export.Dir)
	v.SetDefault("files.ubuntu", defaults.Files.Ubuntu)
	v.SetDefault("files.wsl", defaults.Files.WSL)
	v.SetDefault("privilege.required", defaults.Privilege.Required)

	path, err := ResolvePath(opts)
	if err != nil {
		return nil, "", err
	}

	resolvedPath := ""
	switch {
	case fileExists(path):
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", loadError(path, err,
				"Check that the file contains valid TOML syntax",
				"Use 'ubuntuwsl config show' to see the default configuration")
		}
		resolvedPath = path
	case opts.ConfigFilePath != "":
		return nil, "", loadError(path, fmt.Errorf("config file not found: %s", path),
			"Verify the file path is correct",
			"Create it with 'ubuntuwsl config init'")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", loadError(path, fmt.Errorf("failed to parse config: %w", err),
			"Verify the configuration values have the expected types")
	}
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", loadError(path, errs[0],
			"Fix the listed fields or remove them to use the defaults")
	}

	return &cfg, resolvedPath, nil
}

func loadError(path string, err error, suggestions ...string) error {
	ctx := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithIssue(issue.ConfigLoadFailedId)
	for _, s := range suggestions {
		ctx = ctx.WithSuggestion(s)
	}
	return ctx.Wrap(err).BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before the XDG default.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to the resolved path.
// An existing file is only replaced when force is set. It returns the path and
// whether a file was written.
func CreateDefaultConfig(opts LoadOptions, force bool) (string, bool, error) {
	path, err := ResolvePath(opts)
	if err != nil {
		return "", false, err
	}
	if !force && fileExists(path) {
		return path, false, nil
	}

	data, err := GenerateTOML(DefaultConfig())
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

// GenerateTOML generates a TOML representation of the configuration
func GenerateTOML(cfg *Config) ([]byte, error) {
	body, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	header := "# ubuntuwsl configuration file\n" +
		"# Every key can be overridden with an " + EnvPrefix + "_<SECTION>_<KEY> environment variable.\n\n"
	return append([]byte(header), body...), nil
}
