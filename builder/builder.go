// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// builder.go — the Report product and its fluent ReportBuilder.
package builder

import (
	"fmt"
	"strings"
)

// Section is one titled block of report body text.
type Section struct {
	// Heading is the section title. Must be non-empty at Build time.
	Heading string

	// Body is the section text. May be empty.
	Body string
}

// Report is the immutable product of a ReportBuilder.
// Construct it only through Build.
type Report struct {
	title    string
	author   string
	sections []Section
	footer   string
}

// Title returns the report title.
func (r *Report) Title() string { return r.title }

// Author returns the report author, empty if none was set.
func (r *Report) Author() string { return r.author }

// Sections returns a copy of the report's sections in step order.
func (r *Report) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)

	return out
}

// Render produces the deterministic plain-text form of the report:
// title line, optional author line, one blank-line-separated block per
// section in step order, optional footer line.
// Complexity: O(total text length).
func (r *Report) Render() string {
	var sb strings.Builder
	sb.WriteString("= " + r.title + " =\n")
	if r.author != "" {
		sb.WriteString("by " + r.author + "\n")
	}
	var s Section
	for _, s = range r.sections {
		sb.WriteString("\n## " + s.Heading + "\n")
		if s.Body != "" {
			sb.WriteString(s.Body + "\n")
		}
	}
	if r.footer != "" {
		sb.WriteString("\n-- " + r.footer + "\n")
	}

	return sb.String()
}

// ReportBuilder accumulates report state step by step.
// The zero value is usable; NewReport reads better at call sites.
type ReportBuilder struct {
	title    string
	author   string
	sections []Section
	footer   string
}

// NewReport returns an empty ReportBuilder.
func NewReport() *ReportBuilder {
	return &ReportBuilder{}
}

// Title sets the report title and returns the builder for chaining.
func (b *ReportBuilder) Title(title string) *ReportBuilder {
	b.title = title

	return b
}

// Author sets the report author. Optional.
func (b *ReportBuilder) Author(author string) *ReportBuilder {
	b.author = author

	return b
}

// Section appends a titled body block. Step order is preserved in the
// rendered report. Heading validity is checked at Build, not here.
func (b *ReportBuilder) Section(heading, body string) *ReportBuilder {
	b.sections = append(b.sections, Section{Heading: heading, Body: body})

	return b
}

// Footer sets the closing line. Optional.
func (b *ReportBuilder) Footer(footer string) *ReportBuilder {
	b.footer = footer

	return b
}

// Build validates the accumulated state and assembles the Report.
//
// Errors:
//   - ErrMissingTitle  no Title step was applied
//   - ErrNoSections    no Section step was applied
//   - ErrEmptyHeading  a Section step carried an empty heading (index attached)
//
// The builder remains usable after Build; the returned Report holds its own
// copy of the section list.
func (b *ReportBuilder) Build() (*Report, error) {
	// 1. Validate accumulated state
	if b.title == "" {
		return nil, ErrMissingTitle
	}
	if len(b.sections) == 0 {
		return nil, ErrNoSections
	}
	var i int
	var s Section
	for i, s = range b.sections {
		if s.Heading == "" {
			return nil, fmt.Errorf("%w: section %d", ErrEmptyHeading, i)
		}
	}

	// 2. Copy state out so later steps cannot mutate the product
	sections := make([]Section, len(b.sections))
	copy(sections, b.sections)

	return &Report{
		title:    b.title,
		author:   b.author,
		sections: sections,
		footer:   b.footer,
	}, nil
}
