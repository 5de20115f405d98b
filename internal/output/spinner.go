package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RunWithSpinner runs fn while a spinner labelled message animates on w.
// When w is not a terminal fn simply runs. The spinner never affects the
// returned error.
func RunWithSpinner(ctx context.Context, w io.Writer, message string, fn func(context.Context) error) error {
	if !IsTerminal(w) {
		return fn(ctx)
	}

	r := lipgloss.NewRenderer(w)
	p := tea.NewProgram(newTask(message, r, time.Now), tea.WithOutput(w), tea.WithInput(nil), tea.WithContext(ctx))
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		_, _ = p.Run()
	}()

	err := fn(ctx)
	p.Send(taskDone{err: err})
	<-finished
	return err
}

// taskDone ends a running task view
type taskDone struct {
	err error
}

// task renders a spinner with the elapsed time of a running operation
type task struct {
	spin    spinner.Model
	label   string
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	done    bool
	err     error

	ok, failed, dim lipgloss.Style
}

func newTask(label string, r *lipgloss.Renderer, now func() time.Time) *task {
	return &task{
		spin: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(r.NewStyle().Foreground(lipgloss.Color("14"))),
		),
		label:   label,
		now:     now,
		started: now(),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("9")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (t *task) Init() tea.Cmd {
	return t.spin.Tick
}

func (t *task) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDone:
		t.done, t.err = true, msg.err
		t.elapsed = t.now().Sub(t.started)
		return t, tea.Quit
	case spinner.TickMsg:
		if t.done {
			return t, nil
		}
		t.elapsed = t.now().Sub(t.started)
		var cmd tea.Cmd
		t.spin, cmd = t.spin.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t *task) View() string {
	took := t.dim.Render(fmt.Sprintf("(%s)", t.elapsed.Round(10*time.Millisecond)))
	if !t.done {
		return fmt.Sprintf("%s %s %s", t.spin.View(), t.label, took)
	}
	if t.err != nil {
		return fmt.Sprintf("%s %s %s\n", t.failed.Render("✘"), t.label, took)
	}
	return fmt.Sprintf("%s %s %s\n", t.ok.Render("✔"), t.label, took)
}

// Width returns the terminal width of w, or 80 when w is not a terminal
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
