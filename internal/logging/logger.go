package logging

// Logger receives progress and diagnostic messages from the generator.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only written when verbose mode is enabled.
	Verbose(format string, args ...any)

	// Info logs informational messages about normal operations.
	Info(format string, args ...any)

	// Error logs error messages.
	Error(format string, args ...any)
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NullLogger)(nil)
)
