// SPDX-License-Identifier: MPL-2.0

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys shared by the editor and the front ends.
const (
	MsgBoolInvalid       = "Input should be either 'true' or 'false'"
	MsgPathInvalid       = "Input should be a valid UNIX path"
	MsgControlCharacter  = "Input must not contain control characters such as line breaks"
	MsgMountEmptyEntry   = "an empty entry detected; "
	MsgMountInvalidEntry = "%s is not a valid mount option; "
	MsgMountInvalid      = "Invalid Input: %sPlease check https://docs.microsoft.com/en-us/windows/wsl/wsl-config#mount-options for correct valid input"
	MsgPrivilegeRequired = "You need to have root privileges to use this function. Exiting."
	MsgOK                = "OK."
	MsgRestartRequired   = "Restart Ubuntu to take effect."

	MsgSaved          = "Saved. Restart Ubuntu to take effect."
	MsgNothingToSave  = "No changes to save."
	MsgResetConfirm   = "Do you really want to reset?"
	MsgResetDone      = "Reset complete. Restart Ubuntu to take effect."
	MsgExported       = "Exported as %s."
	MsgImported       = "%s imported. Please restart Ubuntu to take effect."
	MsgNoFileName     = "No input in name, action aborted."
	MsgReloaded       = "Configuration Reloaded."
	MsgDiscardConfirm = "Discard unsaved changes?"
	MsgImportPrompt   = "File name to import:"
	MsgExportPrompt   = "File name to export (optional):"
	MsgHelp           = "Choose a section to edit its settings, then Save to write them. Use ENTER to confirm and ESC to cancel an edit."
)

var german = map[string]string{
	MsgBoolInvalid:       "Die Eingabe muss entweder 'true' oder 'false' sein",
	MsgPathInvalid:       "Die Eingabe muss ein gültiger UNIX-Pfad sein",
	MsgControlCharacter:  "Die Eingabe darf keine Steuerzeichen wie Zeilenumbrüche enthalten",
	MsgMountEmptyEntry:   "ein leerer Eintrag wurde gefunden; ",
	MsgMountInvalidEntry: "%s ist keine gültige Mount-Option; ",
	MsgMountInvalid:      "Ungültige Eingabe: %sBitte prüfen Sie https://docs.microsoft.com/de-de/windows/wsl/wsl-config#mount-options für gültige Werte",
	MsgPrivilegeRequired: "Für diese Funktion werden Root-Rechte benötigt. Beende.",
	MsgOK:                "OK.",
	MsgRestartRequired:   "Starten Sie Ubuntu neu, damit die Änderungen wirksam werden.",
	MsgSaved:             "Gespeichert. Starten Sie Ubuntu neu, damit die Änderungen wirksam werden.",
	MsgNothingToSave:     "Keine Änderungen zu speichern.",
	MsgResetConfirm:      "Wirklich zurücksetzen?",
	MsgResetDone:         "Zurückgesetzt. Starten Sie Ubuntu neu, damit die Änderungen wirksam werden.",
	MsgExported:          "Exportiert als %s.",
	MsgImported:          "%s importiert. Bitte starten Sie Ubuntu neu, damit die Änderungen wirksam werden.",
	MsgNoFileName:        "Kein Dateiname angegeben, Aktion abgebrochen.",
	MsgReloaded:          "Konfiguration neu geladen.",
	MsgDiscardConfirm:    "Ungespeicherte Änderungen verwerfen?",
	MsgImportPrompt:      "Name der zu importierenden Datei:",
	MsgExportPrompt:      "Name der Exportdatei (optional):",
	MsgHelp:              "Wählen Sie einen Abschnitt, um seine Einstellungen zu bearbeiten, und speichern Sie anschließend. ENTER bestätigt, ESC bricht eine Bearbeitung ab.",
}

func init() {
	for key, msg := range german {
		_ = message.SetString(language.German, key, msg) // only fails for malformed tags
	}
}
