package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Confirm asks a yes/no question on stdin.
// Pressing Enter returns defaultYes.
func Confirm(message string, defaultYes bool) bool {
	return ConfirmFrom(os.Stdin, std.out, message, defaultYes)
}

// ConfirmFrom is Confirm reading answers from in and writing the prompt to out
func ConfirmFrom(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}
