// Package output provides structured output handling for the exampledocs CLI.
//
// Every command writes through a Printer so the same command works for a
// person at a terminal and for a build script or agent reading JSON.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Generated 4 example pages"})
//	printer.Table([]string{"#", "TITLE"}, rows)
//	printer.Error(err)
//
// # JSON Mode
//
// With --json, all output is structured:
//
//	// Success: {"message": "...", ...}
//	// Error:   {"error": "message", "code": N}
//
// # Styling
//
// Human output is styled with lipgloss. Styles are empty when the writer is
// not a terminal, or when --color never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, malformed example file
//	output.ExitSystemError // 2: filesystem or git failure
//	output.ExitCheckFailed // 3: generated pages are out of date
package output
