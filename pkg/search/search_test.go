package search

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"unsafe"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
		expected []string
	}{
		{
			name:     "case sensitive match",
			query:    "duct",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.",
			expected: []string{"safe, fast, productive."},
		},
		{
			name:     "exact casing required",
			query:    "Pick",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.",
			expected: []string{"Pick three."},
		},
		{
			name:     "no match",
			query:    "monomorphization",
			contents: "Rust:\nsafe, fast, productive.",
			expected: nil,
		},
		{
			name:     "empty query matches every line",
			query:    "",
			contents: "one\n\nthree",
			expected: []string{"one", "", "three"},
		},
		{
			name:     "empty content",
			query:    "anything",
			contents: "",
			expected: nil,
		},
		{
			name:     "empty query on empty content",
			query:    "",
			contents: "",
			expected: nil,
		},
		{
			name:     "query longer than line",
			query:    "productive and more",
			contents: "productive",
			expected: nil,
		},
		{
			name:     "crlf terminators are stripped",
			query:    "a",
			contents: "alpha\r\nbeta\r\ngamma\r\n",
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "trailing newline adds no line",
			query:    "",
			contents: "first\nsecond\n",
			expected: []string{"first", "second"},
		},
		{
			name:     "query does not span lines",
			query:    "a\nb",
			contents: "a\nb",
			expected: nil,
		},
		{
			name:     "multiple occurrences yield one line",
			query:    "ab",
			contents: "abab\nba",
			expected: []string{"abab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Search(tt.query, tt.contents))
		})
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
		expected []string
	}{
		{
			name:     "mixed case query",
			query:    "rUsT",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			expected: []string{"Rust:", "Trust me."},
		},
		{
			name:     "lowercase query finds capitalised line",
			query:    "pick",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.",
			expected: []string{"Pick three."},
		},
		{
			name:     "non ascii letters",
			query:    "ÜBER",
			contents: "über alles\nuber\nÜberall",
			expected: []string{"über alles", "Überall"},
		},
		{
			name:     "length changing lowercase keeps original line",
			query:    "KELVIN",
			contents: "\u212Aelvin scale\ncelsius",
			expected: []string{"\u212Aelvin scale"},
		},
		{
			name:     "empty query matches every line",
			query:    "",
			contents: "A\nb",
			expected: []string{"A", "b"},
		},
		{
			name:     "empty content",
			query:    "x",
			contents: "",
			expected: nil,
		},
		{
			name:     "crlf terminators are stripped",
			query:    "BETA",
			contents: "alpha\r\nBeta\r\n",
			expected: []string{"Beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SearchCaseInsensitive(tt.query, tt.contents))
		})
	}
}

func TestSearchProperties(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.\r\nTRUST ME\n\nrusty nail"
	queries := []string{"", "rust", "Rust", "t", "DUCT", ".", "three", "zzz", "\r"}

	lines := Lines(contents)

	for _, query := range queries {
		sensitive := Search(query, contents)
		insensitive := SearchCaseInsensitive(query, contents)

		// every returned line contains the query, every omitted line does not
		matched := make(map[int]bool)
		pos := 0
		for i, line := range lines {
			if pos < len(sensitive) && sensitive[pos] == line && strings.Contains(line, query) {
				matched[i] = true
				pos++
			}
		}
		assert.Equal(t, len(sensitive), pos, "query %q", query)
		for i, line := range lines {
			assert.Equal(t, strings.Contains(line, query), matched[i], "query %q line %q", query, line)
		}

		// ignoring case can only relax the match
		assert.GreaterOrEqual(t, len(insensitive), len(sensitive), "query %q", query)
		for _, line := range sensitive {
			assert.Contains(t, insensitive, line, "query %q", query)
		}

		// repeated runs are identical
		assert.Equal(t, sensitive, Search(query, contents))
		assert.Equal(t, insensitive, SearchCaseInsensitive(query, contents))
	}
}

func TestSearchResultsShareContentStorage(t *testing.T) {
	contents := "alpha\nbeta\ngamma"
	results := Search("beta", contents)
	require.Len(t, results, 1)

	start := uintptr(unsafe.Pointer(unsafe.StringData(contents)))
	got := uintptr(unsafe.Pointer(unsafe.StringData(results[0])))
	assert.Equal(t, start+uintptr(len("alpha\n")), got)
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{""}, Lines("\n"))
	assert.Equal(t, []string{"", ""}, Lines("\n\r\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
	assert.Equal(t, []string{"a\rb"}, Lines("a\rb"))
}

func TestLoad(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/poem.txt", []byte("Rust:\nsafe, fast, productive.\n"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/binary.dat", []byte("ok\n\xff\xfe"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/empty.txt", nil, 0644))

	t.Run("reads whole file", func(t *testing.T) {
		contents, err := Load(memFs, "/poem.txt")
		require.NoError(t, err)
		assert.Equal(t, "Rust:\nsafe, fast, productive.\n", contents)
	})

	t.Run("empty file", func(t *testing.T) {
		contents, err := Load(memFs, "/empty.txt")
		require.NoError(t, err)
		assert.Empty(t, contents)
	})

	t.Run("missing file error is returned unchanged", func(t *testing.T) {
		_, err := Load(memFs, "/missing.txt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		_, err := Load(memFs, "/binary.dat")
		require.Error(t, err)

		var encErr *EncodingError
		require.True(t, errors.As(err, &encErr))
		assert.Equal(t, "/binary.dat", encErr.Path)
		assert.Equal(t, 3, encErr.Offset)
		assert.Contains(t, err.Error(), "invalid UTF-8")
	})
}
