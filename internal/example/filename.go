package example

import (
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseFilename splits an example filename such as "01_functions.py" into
// its zero-padded index ("01"), the numeric index (1) and the display
// title ("Functions").
func ParseFilename(name string) (indexWithZero string, index int, title string, err error) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	prefix, rest, _ := strings.Cut(stem, "_")

	if prefix == "" || strings.TrimLeft(prefix, "0123456789") != "" {
		return "", 0, "", &ParseError{
			Path:    name,
			Message: "filename must start with a numeric index",
			Hint:    "Rename the file to <digits>_<words>" + filepath.Ext(base) + ", for example 01_" + stem + filepath.Ext(base) + ".",
			Err:     ErrMalformedFilename,
		}
	}

	index, err = strconv.Atoi(prefix)
	if err != nil {
		return "", 0, "", &ParseError{
			Path:    name,
			Message: "index " + prefix + " is out of range",
			Hint:    "Use a shorter numeric prefix.",
			Err:     ErrMalformedFilename,
		}
	}

	title = TitleCase(rest)
	if title == "" {
		return "", 0, "", &ParseError{
			Path:    name,
			Message: "filename has no title after the index",
			Hint:    "Add words after the index, for example " + prefix + "_basics" + filepath.Ext(base) + ".",
			Err:     ErrMalformedFilename,
		}
	}

	return prefix, index, title, nil
}

// TitleCase turns "foo_bar" into "Foo Bar". Applying it twice gives the
// same result as applying it once.
func TitleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
