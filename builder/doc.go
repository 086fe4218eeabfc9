// SPDX-License-Identifier: MIT
// Package: gopatterns/builder
//
// Package builder implements the Builder pattern: step-wise, fluent
// construction of a Report document whose invariants are checked once, at
// Build time, instead of being smeared across setters.
//
// Design contract (strict):
//   - One orchestrator: NewReport().Title(...).Author(...).Section(...).Build().
//   - Steps never fail and never panic; they only accumulate state.
//   - Build validates the accumulated state and returns sentinel errors;
//     callers MUST branch with errors.Is.
//   - Determinism: the same step sequence produces an identical Report and
//     an identical Render output.
//   - A builder may be reused after Build; Build copies state out, so later
//     steps never mutate already-built reports.
package builder
