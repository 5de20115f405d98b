// Package output prints styled, user-facing CLI messages.
//
// Diagnostics go through pkg/logger; this package is for what the user
// asked to see:
//
//	output.Success("Analyzed 12 files")
//	output.Info("Components:")
//	output.Step("my-card (MyCard) 4 properties")
//	output.Warn("src/broken.ts: syntax errors, results may be partial")
//
// Verbose lines are printed only after SetVerbose(true). Long-running work
// can be wrapped in RunWithSpinner, which animates only on a terminal.
package output
