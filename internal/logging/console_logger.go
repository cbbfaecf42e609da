package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleLogger writes log lines to a writer.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	w        io.Writer
	verbose  bool
	verboseT string
	errorT   string
	mu       sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to w.
// If verbose is false, Verbose calls are no-ops. If color is true the
// line tags are styled with lipgloss.
func NewConsoleLogger(w io.Writer, verbose, color bool) *ConsoleLogger {
	verboseTag := "[verbose]"
	errorTag := "[error]"
	if color {
		verboseTag = lipgloss.NewStyle().Faint(true).Render(verboseTag)
		errorTag = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render(errorTag)
	}
	return &ConsoleLogger{
		w:        w,
		verbose:  verbose,
		verboseT: verboseTag,
		errorT:   errorTag,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.write(l.verboseT+" ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.write(l.errorT+" ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprint(l.w, prefix+msg+"\n")
}
