// Package wren holds build metadata for the wren reactive property analyzer.
package wren

// Version is overridden at build time with -ldflags "-X github.com/simonhull/firebird-suite/wren.Version=..."
var Version = "0.1.0-dev"

// Name is the tool name recorded in generated reports
const Name = "wren"
