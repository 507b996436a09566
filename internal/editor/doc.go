// SPDX-License-Identifier: MPL-2.0

// Package editor owns the live configuration of one instance.
//
// An Editor starts from the schema defaults, overlays the override file found
// at the instance's file location and mediates every read and write. Writes are
// validated against the declared setting type, gated on process privilege when
// a privilege.Checker is configured, and flushed by rewriting the whole file.
//
// Editors are not safe for concurrent use. Nothing coordinates with other
// processes writing the same file: the last writer wins.
package editor
