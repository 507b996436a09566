// SPDX-License-Identifier: MPL-2.0

// Package schema describes every configuration file ubuntuwsl can edit.
//
// A Registry holds one Instance per supported file (the Ubuntu distribution
// settings in /etc/ubuntu-wsl.conf and the WSL settings in /etc/wsl.conf).
// Each Instance is an ordered list of Sections, and each Section an ordered list
// of Settings carrying a default value, a declared SettingType and display text.
//
// The registry is built once by NewRegistry and never mutated afterward; callers
// pass it down explicitly instead of reaching for package-level state.
package schema
