// SPDX-License-Identifier: MPL-2.0

// Package inifile is an ordered, case-sensitive INI document.
//
// Parsing is delegated to gopkg.in/ini.v1 with options that keep values literal
// (no inline comments, no line continuation, quotes preserved). Serialization is
// done here so the output is always "[section]" headers followed by
// "key = value" lines. Values ini.v1 would not read back verbatim are wrapped
// in triple quotes.
package inifile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultSection holds keys that appear before any section header.
const DefaultSection = "DEFAULT"

type (
	// Document is an ordered INI document. The zero value is not usable; use New.
	Document struct {
		sections []*section
		index    map[string]*section
	}

	section struct {
		name   string
		keys   []string
		values map[string]string
	}
)

// New returns an empty document.
func New() *Document {
	return &Document{index: make(map[string]*section)}
}

// Parse reads an INI document. Section and key order is preserved.
func Parse(data []byte) (*Document, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}

	doc := New()
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == DefaultSection && len(keys) == 0 {
			continue
		}
		doc.AddSection(sec.Name())
		for _, k := range keys {
			doc.Set(sec.Name(), k.Name(), k.Value())
		}
	}
	return doc, nil
}

// AddSection appends an empty section if it does not exist yet.
func (d *Document) AddSection(name string) {
	d.section(name)
}

func (d *Document) section(name string) *section {
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &section{name: name, values: make(map[string]string)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

// Sections returns section names in document order.
func (d *Document) Sections() []string {
	out := make([]string, len(d.sections))
	for i, s := range d.sections {
		out[i] = s.name
	}
	return out
}

// HasSection reports whether the section exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Keys returns the keys of a section in document order.
func (d *Document) Keys(sectionName string) []string {
	s, ok := d.index[sectionName]
	if !ok {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the value of a key.
func (d *Document) Get(sectionName, key string) (string, bool) {
	s, ok := d.index[sectionName]
	if !ok {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Set assigns a value, appending the section and key when they are new.
func (d *Document) Set(sectionName, key, value string) {
	s := d.section(sectionName)
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Overlay copies every section and key of other into d. Existing keys keep
// their position; new ones are appended.
func (d *Document) Overlay(other *Document) {
	for _, src := range other.sections {
		d.AddSection(src.name)
		for _, k := range src.keys {
			d.Set(src.name, k, src.values[k])
		}
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := New()
	c.Overlay(d)
	return c
}

// Equal reports whether both documents hold the same sections, keys, values
// and order.
func (d *Document) Equal(other *Document) bool {
	if len(d.sections) != len(other.sections) {
		return false
	}
	for i, s := range d.sections {
		o := other.sections[i]
		if s.name != o.name || len(s.keys) != len(o.keys) {
			return false
		}
		for j, k := range s.keys {
			if o.keys[j] != k || o.values[k] != s.values[k] {
				return false
			}
		}
	}
	return true
}

// WriteTo serializes the document. An empty DEFAULT section is omitted.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	for _, s := range d.sections {
		if s.name == DefaultSection && len(s.keys) == 0 {
			continue
		}
		fmt.Fprintf(cw, "[%s]\n", s.name)
		for _, k := range s.keys {
			fmt.Fprintf(cw, "%s = %s\n", k, quoteValue(s.values[k]))
		}
		fmt.Fprintln(cw)
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// quoteValue wraps v in triple quotes when ini.v1 would otherwise trim it,
// split it across lines or strip a leading quote sequence. ini.v1 closes the
// quotes at their last occurrence on a line, so single-line values may
// contain them.
func quoteValue(v string) string {
	if v == "" {
		return v
	}
	if strings.ContainsAny(v, "\r\n") ||
		strings.TrimSpace(v) != v ||
		strings.HasPrefix(v, "`") ||
		strings.HasPrefix(v, `"""`) {
		return `"""` + v + `"""`
	}
	return v
}

// Bytes serializes the document into memory.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf) // bytes.Buffer writes never fail
	return buf.Bytes()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
