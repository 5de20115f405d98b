// Package property normalizes reactive property declarations.
//
// # Overview
//
// Lit-style components declare observed properties with a decorator:
//
//	@property({ type: Boolean, reflect: true, attribute: "is-open" })
//	open = false;
//
// The options object is loosely typed. This package turns it into a
// Config with typed fields. The work happens in three steps, each used by
// the next:
//
//   - LocateDecorator finds the `@property(...)` call on a class member.
//   - Extractor.Extract reads the call's first argument and folds its
//     `key: value` members.
//   - Extractor.Interpret applies a single option to the configuration
//     folded so far and returns the updated copy.
//
// # Absent vs empty
//
// Extract returns ok == false when the member has no property decorator.
// `@property()` and `@property(someVariable)` return the zero Config with
// ok == true.
//
// # Degradation
//
// Nothing in this package returns an error. Unknown options are ignored,
// and options whose values cannot be determined statically leave their
// field unset. Repeated options follow object literal semantics: the
// last one wins.
package property
