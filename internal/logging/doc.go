// Package logging provides the progress logger used by the generator.
//
// Available implementations:
//   - ConsoleLogger: writes formatted lines to a writer (stderr in the CLI)
//   - NullLogger: discards all messages (tests and the MCP server, where stdout is the protocol)
//
// All implementations are safe for concurrent use.
package logging
