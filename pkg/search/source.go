package search

import (
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Load reads the whole file at path into memory and returns it as text.
// Errors from opening or reading the file are returned unchanged. Content that
// is not valid UTF-8 is rejected with an *EncodingError.
func Load(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", &EncodingError{Path: path, Offset: invalidOffset(data)}
	}

	return string(data), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
func invalidOffset(data []byte) int {
	offset := 0
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
		data = data[size:]
	}
	return offset
}
