// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     Build attaches context via %w.
package builder

import "errors"

// ErrMissingTitle indicates Build was called before any Title step.
// Usage: if errors.Is(err, ErrMissingTitle) { /* prompt for a title */ }.
var ErrMissingTitle = errors.New("builder: report title is required")

// ErrNoSections indicates Build was called with zero Section steps.
// A report body cannot be empty.
var ErrNoSections = errors.New("builder: report needs at least one section")

// ErrEmptyHeading indicates a Section step carried an empty heading.
// Reported at Build time, with the offending section index attached via %w.
var ErrEmptyHeading = errors.New("builder: section heading is empty")
