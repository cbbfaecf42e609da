// Package usage rewrites the usage commands of an example so they can be
// run from the documentation source tree.
//
// A usage such as
//
//	python 02_containers.py --foo 1
//
// becomes
//
//	python ../../examples/02_containers.py --foo 1
//
// with every other argument kept in order and re-quoted for a POSIX
// shell. The label shown to readers strips the examples prefix again.
package usage

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrNoRuntime means the usage never invokes the runtime.
	ErrNoRuntime = errors.New("usage does not invoke the runtime")
	// ErrNoScript means nothing follows the runtime keyword.
	ErrNoScript = errors.New("usage has no script after the runtime")
	// ErrPrefixMissing means the rewritten command lacks the examples prefix.
	ErrPrefixMissing = errors.New("command does not reference the examples directory")
)

// Rewrite replaces the runtime keyword and the script that follows it with
// runtime and scriptPath. Arguments before and after are preserved.
func Rewrite(usage, runtime, scriptPath string) (string, error) {
	args, err := shellquote.Split(usage)
	if err != nil {
		return "", fmt.Errorf("splitting usage %q: %w", usage, err)
	}

	i := slices.Index(args, runtime)
	if i < 0 {
		return "", fmt.Errorf("%w: no %q in %q", ErrNoRuntime, runtime, usage)
	}
	if i+1 >= len(args) {
		return "", fmt.Errorf("%w: %q", ErrNoScript, usage)
	}

	return Join(slices.Concat(args[:i], []string{runtime, scriptPath}, args[i+2:]))
}

// Join quotes each argument for a POSIX shell and joins them with spaces.
// Words made only of safe characters stay bare.
func Join(args []string) (string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := quote(arg)
		if err != nil {
			return "", fmt.Errorf("quoting %q: %w", arg, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

func quote(arg string) (string, error) {
	if arg != "" && strings.Trim(arg, safeChars) == "" {
		return arg, nil
	}
	q, err := syntax.Quote(arg, syntax.LangPOSIX)
	if err == nil {
		return q, nil
	}
	// Non-printable runes need bash's $'...' form.
	return syntax.Quote(arg, syntax.LangBash)
}

// safeChars never need quoting, so "--foo=1" and "a/b.py" stay readable.
const safeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// Label removes every occurrence of prefix from command, giving the short
// form shown above the command output.
func Label(command, prefix string) (string, error) {
	if prefix == "" || !strings.Contains(command, prefix) {
		return "", fmt.Errorf("%w: %q not in %q", ErrPrefixMissing, prefix, command)
	}
	return strings.ReplaceAll(command, prefix, ""), nil
}
