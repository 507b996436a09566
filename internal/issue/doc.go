// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the file involved and remediation
// hints. Issue cards are Markdown guidance rendered with glamour for the failure
// modes an administrator can fix on their own (missing privileges, unreadable or
// malformed override files, bad imports, unknown keys).
package issue
