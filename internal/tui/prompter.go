// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

type (
	// Field is one setting in a SectionForm.
	Field struct {
		Title       string
		Description string
		// Bool fields are edited as yes/no confirms and answer "true" or "false".
		Bool  bool
		Value string
		// Validate is called on text answers; nil accepts anything.
		Validate func(string) error
	}

	// SectionForm is one page of settings edited together.
	SectionForm struct {
		Title       string
		Description string
		Fields      []Field
	}

	// Prompter asks the user questions. Every method returns ErrCancelled when
	// the user aborts.
	Prompter interface {
		Select(title string, options []string) (string, error)
		// EditSection returns the answers in field order.
		EditSection(form SectionForm) ([]string, error)
		Confirm(title string) (bool, error)
		Input(title, description string) (string, error)
		Message(title, body string) error
	}

	// HuhPrompter is the interactive Prompter backed by huh forms.
	HuhPrompter struct {
		cfg Config
	}
)

// NewHuhPrompter creates a Prompter that renders huh forms.
func NewHuhPrompter(cfg Config) *HuhPrompter {
	return &HuhPrompter{cfg: cfg}
}

func (p *HuhPrompter) run(groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(getHuhTheme(p.cfg.Theme)).
		WithAccessible(p.cfg.Accessible)
	if p.cfg.Width > 0 {
		form = form.WithWidth(p.cfg.Width)
	}
	if p.cfg.Input != nil {
		form = form.WithInput(p.cfg.Input)
	}
	if p.cfg.Output != nil {
		form = form.WithOutput(p.cfg.Output)
	}

	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Select implements Prompter.
func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	var choice string
	err := p.run(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&choice),
	))
	return choice, err
}

// EditSection implements Prompter.
func (p *HuhPrompter) EditSection(form SectionForm) ([]string, error) {
	texts := make([]string, len(form.Fields))
	bools := make([]bool, len(form.Fields))
	fields := make([]huh.Field, 0, len(form.Fields))

	for i, f := range form.Fields {
		if f.Bool {
			bools[i] = f.Value == "true"
			fields = append(fields, huh.NewConfirm().
				Title(f.Title).
				Description(f.Description).
				Value(&bools[i]))
			continue
		}
		texts[i] = f.Value
		input := huh.NewInput().
			Title(f.Title).
			Description(f.Description).
			Value(&texts[i])
		if f.Validate != nil {
			input = input.Validate(f.Validate)
		}
		fields = append(fields, input)
	}

	if err := p.run(huh.NewGroup(fields...).Title(form.Title).Description(form.Description)); err != nil {
		return nil, err
	}

	answers := make([]string, len(form.Fields))
	for i, f := range form.Fields {
		if f.Bool {
			answers[i] = fmt.Sprint(bools[i])
		} else {
			answers[i] = texts[i]
		}
	}
	return answers, nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := p.run(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&ok),
	))
	return ok, err
}

// Input implements Prompter.
func (p *HuhPrompter) Input(title, description string) (string, error) {
	var s string
	err := p.run(huh.NewGroup(
		huh.NewInput().Title(title).Description(description).Value(&s),
	))
	return s, err
}

// Message implements Prompter. It prints a boxed message and returns.
func (p *HuhPrompter) Message(title, body string) error {
	out := p.cfg.Output
	if out == nil {
		out = DefaultConfig().Output
	}
	_, err := fmt.Fprintln(out, messageStyle.Render(headerStyle.Render(title)+"\n\n"+body))
	return err
}
