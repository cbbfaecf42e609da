// Package example extracts documentation metadata from example programs.
//
// An example file is named <digits>_<words>.<ext> and starts with a
// documentation comment between two delimiters (""" for Python):
//
//	"""Shows containers.
//
//	Usage:
//	`python 02_containers.py --foo 1`
//	"""
//	print("hi")
//
// The text before "Usage:" is the description. Lines of the usage section
// wrapped in a single pair of backticks are usage commands; other lines
// are prose and ignored. Everything after the closing delimiter is the
// example body.
//
// Files whose name starts with an underscore are helpers and never
// scanned. Every other failure is fatal: a missing "Usage:" marker or a
// malformed filename is returned as a *ParseError wrapping one of the
// sentinel errors, so callers can match with errors.Is.
package example
