// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects which settings file is read.
	LoadOptions struct {
		// ConfigFilePath is the --config value. When set the file must exist.
		ConfigFilePath string
		// ConfigDirPath replaces the XDG directory lookup (tests).
		ConfigDirPath string
	}

	// Provider loads the tool settings.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	// SourceProvider is a Provider that also reports the file it read.
	SourceProvider interface {
		Provider
		// LoadWithSource returns the settings and the file they were read from.
		// The path is empty when only defaults and environment variables applied.
		LoadWithSource(ctx context.Context, opts LoadOptions) (*Config, string, error)
	}

	viperProvider struct{}
)

// NewProvider creates the viper-backed provider.
func NewProvider() SourceProvider {
	return viperProvider{}
}

// Load implements Provider.
func (viperProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}

// LoadWithSource implements SourceProvider.
func (viperProvider) LoadWithSource(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
