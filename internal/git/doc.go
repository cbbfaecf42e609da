// Package git locates the repository that owns the example tree.
//
// It shells out to the git executable, captures stdout/stderr and
// translates failures into *output.ExitError values:
//
//	root, err := git.RepoRoot(ctx, "")         // repository of the working directory
//	root, err := git.RepoRoot(ctx, "examples") // repository of a given directory
//	out, err := git.RunContext(ctx, "status", "--short")
//
// Failures carry output.ExitSystemError (2); the CLI falls back to the
// working directory when no repository is found.
package git
