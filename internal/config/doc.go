// SPDX-License-Identifier: MPL-2.0

// Package config handles the settings of the ubuntuwsl tool itself using Viper
// with TOML as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/ubuntuwsl/config.toml
// (~/.config/ubuntuwsl/config.toml when unset) and every key can be overridden
// with an UBUNTUWSL_<SECTION>_<KEY> environment variable. These settings cover
// the UI theme, log level, export defaults, the location of the WSL
// configuration files and whether writes require root. The WSL configuration
// files themselves are handled by the editor package.
package config
