// SPDX-License-Identifier: MPL-2.0

package editor

// Update validates value and, when valid, applies and persists it. A failed
// validation or write leaves the live configuration unchanged.
func (e *Editor) Update(section, setting, value string) error {
	if err := e.requirePrivilege("update"); err != nil {
		return err
	}

	ok, msg, err := e.Validate(section, setting, value)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Key: e.key(section, setting), Value: value, Message: msg}
	}

	prev := e.live.Clone()
	e.live.Set(section, setting, value)
	if err := e.persist(); err != nil {
		e.live = prev
		return err
	}
	e.logger.Debug("updated setting", "key", e.key(section, setting), "value", value)
	return nil
}

// Reset restores the schema default of one setting and persists.
func (e *Editor) Reset(section, setting string) error {
	if err := e.requirePrivilege("reset"); err != nil {
		return err
	}

	def, err := e.registry.LookupSetting(e.inst.Type, section, setting)
	if err != nil {
		return err
	}

	prev := e.live.Clone()
	e.live.Set(section, setting, def.Default)
	if err := e.persist(); err != nil {
		e.live = prev
		return err
	}
	e.logger.Debug("reset setting", "key", e.key(section, setting))
	return nil
}

// ResetAll rebuilds the live configuration from defaults and persists it.
// Pass-through keys are dropped.
func (e *Editor) ResetAll() error {
	if err := e.requirePrivilege("reset all"); err != nil {
		return err
	}

	prev := e.live
	e.live = e.defaults()
	if err := e.persist(); err != nil {
		e.live = prev
		return err
	}
	e.logger.Debug("reset all settings")
	return nil
}

// Save persists the live configuration as is.
func (e *Editor) Save() error {
	if err := e.requirePrivilege("save"); err != nil {
		return err
	}
	return e.persist()
}
