/*
Package search implements line filtering over an in-memory text buffer.

Both search variants return lines as substrings of the content they were given.
The returned strings share the content's backing storage, so no line is copied:

	contents, err := search.Load(fs, "poem.txt")
	if err != nil {
		return err
	}

	for _, line := range search.Search("duct", contents) {
		fmt.Println(line)
	}

Lines are split on "\n" with a trailing "\r" removed, so LF and CRLF files behave
the same. A terminator at the very end of the content does not produce an extra
empty line.
*/
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents that contains query as an exact
// substring, in the order the lines appear.
func Search(query, contents string) []string {
	var results []string
	forEachLine(contents, func(line string) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	})
	return results
}

// SearchCaseInsensitive returns every line of contents that contains query once
// both are lowercased. The lowercase mapping is the locale-independent Unicode one,
// applied to the whole string. Returned lines keep their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results []string
	forEachLine(contents, func(line string) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	})
	return results
}

// Lines splits contents into lines using the same rules as the search functions.
func Lines(contents string) []string {
	var lines []string
	forEachLine(contents, func(line string) {
		lines = append(lines, line)
	})
	return lines
}

func forEachLine(contents string, fn func(line string)) {
	for len(contents) > 0 {
		var line string
		if i := strings.IndexByte(contents, '\n'); i >= 0 {
			line, contents = contents[:i], contents[i+1:]
		} else {
			line, contents = contents, ""
		}
		fn(strings.TrimSuffix(line, "\r"))
	}
}
