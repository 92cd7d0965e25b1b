package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleInfo      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BCD4")) // teal
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E05A3A")) // terracotta
	styleComponent = lipgloss.NewStyle().Faint(true)
)

// ConsoleLogger writes short colored lines for humans running the tool.
type ConsoleLogger struct {
	w       io.Writer
	colored bool
}

func NewConsoleLogger(w io.Writer, colored bool) ConsoleLogger {
	return ConsoleLogger{w: w, colored: colored}
}

func (l ConsoleLogger) Infof(component, format string, args ...interface{}) {
	l.write(styleInfo, "✓", component, format, args...)
}

func (l ConsoleLogger) Errorf(component, format string, args ...interface{}) {
	l.write(styleError, "✗", component, format, args...)
}

func (l ConsoleLogger) write(style lipgloss.Style, tag, component, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	prefix := component + ":"
	if l.colored {
		tag = style.Render(tag)
		prefix = styleComponent.Render(prefix)
	}
	_, _ = fmt.Fprintf(l.w, "%s %s %s\n", tag, prefix, msg)
}
