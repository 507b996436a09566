// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by tests: a controllable clock,
// environment variable management (MustSetenv, MustUnsetenv, SetHomeDir) and
// afero file helpers (MustWriteFile, MustReadFile).
package testutil
