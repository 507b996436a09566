// SPDX-License-Identifier: MPL-2.0

// Package privilege reports whether the process may write system configuration.
package privilege

type (
	// Checker reports whether the current process runs with elevated rights.
	Checker interface {
		Elevated() bool
	}

	// Static is a Checker with a fixed answer.
	Static bool

	systemChecker struct{}
)

// System returns the Checker backed by the process credentials.
func System() Checker {
	return systemChecker{}
}

// Elevated implements Checker.
func (s Static) Elevated() bool {
	return bool(s)
}

// Elevated implements Checker.
func (systemChecker) Elevated() bool {
	return elevated()
}
