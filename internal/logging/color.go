package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Level colors for console output on a terminal.
const (
	ColorGray   = "245" // DEBUG
	ColorLime   = "154" // INFO
	ColorYellow = "220" // WARNING
	ColorRed    = "196" // ERROR, CRITICAL
)

// consoleStyles renders level names for a terminal.
type consoleStyles map[Severity]lipgloss.Style

// newConsoleStyles builds styles bound to w so lipgloss picks the color
// profile of that stream.
func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		SeverityDebug:    r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		SeverityInfo:     r.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		SeverityWarning:  r.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		SeverityError:    r.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		SeverityCritical: r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
	}
}

func (c consoleStyles) render(s Severity) string {
	if style, ok := c[s]; ok {
		return style.Render(s.String())
	}
	return s.String()
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
