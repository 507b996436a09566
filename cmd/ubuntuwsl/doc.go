// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ubuntuwsl.
//
// NewRootCommand builds the Cobra command hierarchy around an App, the
// composition root that loads the tool settings, builds the schema registry
// and hands out one editor per configuration file. Execute runs the tree
// through fang and maps failures to exit codes: 1 for invalid values and
// other errors, 77 when a write needs root.
package cmd
