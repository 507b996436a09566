// SPDX-License-Identifier: MPL-2.0

// Package tui is the interactive front end of ubuntuwsl.
//
// A Session drives a menu of actions (edit, save, reset, import, export,
// reload, help, exit) over one editor per configuration file. All questions go
// through the Prompter interface; HuhPrompter renders them as charmbracelet/huh
// forms styled with lipgloss.
package tui
