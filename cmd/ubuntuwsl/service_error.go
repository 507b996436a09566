// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/ubuntu/ubuntuwsl/internal/editor"
	"github.com/ubuntu/ubuntuwsl/internal/i18n"
	"github.com/ubuntu/ubuntuwsl/internal/issue"
	"github.com/ubuntu/ubuntuwsl/internal/schema"
)

// classifyError maps an editor or schema failure to an exit code, an issue
// card and the message shown to the user.
func classifyError(err error, tr i18n.Translator, verbose bool) (code int, issueID issue.Id, msg string) {
	code, msg = ExitFailure, formatErrorForDisplay(err, verbose)

	switch {
	case errors.Is(err, editor.ErrPrivilegeRequired):
		return ExitPrivilegeRequired, issue.PermissionDeniedId, tr.Sprintf(i18n.MsgPrivilegeRequired)
	case errors.Is(err, editor.ErrValidation):
		var ve *editor.ValidationError
		if errors.As(err, &ve) {
			msg = ve.Key.String() + ": " + ve.Message
		}
		return code, issue.InvalidValueId, msg
	case errors.Is(err, editor.ErrKeyNotFound),
		errors.Is(err, schema.ErrUnknownSetting),
		errors.Is(err, schema.ErrUnknownInstance),
		errors.Is(err, schema.ErrInvalidKey):
		return code, issue.UnknownKeyId, msg
	case errors.Is(err, editor.ErrInstanceMismatch),
		errors.Is(err, editor.ErrInvalidExportFormat):
		return code, issue.ImportFailedId, msg
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return code, ae.IssueId, msg
	}
	return code, 0, msg
}

// fail turns err into an *ExitError. With --verbose the matching issue card is
// rendered to stderr first.
func (a *App) fail(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code, issueID, msg := classifyError(err, a.Translator, a.flags.verbose)
	if a.flags.verbose {
		renderIssue(a.stderr, issueID)
	}
	return &ExitError{Code: code, Err: err, Message: msg}
}

// renderIssue writes the issue card of issueID, if any.
func renderIssue(stderr io.Writer, issueID issue.Id) {
	if issueID == 0 {
		return
	}
	if card := issue.Get(issueID); card != nil {
		rendered, err := card.Render("dark")
		if err != nil {
			return
		}
		fmt.Fprint(stderr, rendered)
	}
}
