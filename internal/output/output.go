package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type printer struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool

	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	step    lipgloss.Style
}

var std = newPrinter(os.Stdout)

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		out:     w,
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("14")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		step:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (p *printer) println(style lipgloss.Style, s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, style.Render(s))
}

// SetWriter redirects all output to w and returns the previous writer.
// Styling is re-detected for the new writer.
func SetWriter(w io.Writer) io.Writer {
	prev := std.out
	verbose := std.verbose
	std = newPrinter(w)
	std.verbose = verbose
	return prev
}

// SetVerbose enables or disables verbose output.
// The CLI calls this when --verbose is set.
func SetVerbose(v bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.verbose = v
}

// Success prints a completed operation in green
func Success(msg string) { std.println(std.success, "✔ "+msg) }

// Error prints a failure that needs the user's attention
func Error(msg string) { std.println(std.failure, "✘ "+msg) }

// Warn prints a problem that did not stop the run
func Warn(msg string) { std.println(std.warn, "! "+msg) }

// Info prints a status line
func Info(msg string) { std.println(std.info, msg) }

// Step prints an indented detail line
func Step(msg string) { std.println(std.step, "   "+msg) }

// Verbose prints msg only in verbose mode
func Verbose(msg string) {
	std.mu.Lock()
	on := std.verbose
	std.mu.Unlock()
	if on {
		std.println(std.step, "· "+msg)
	}
}
