package search

import "fmt"

// EncodingError reports file content that is not valid UTF-8 text
type EncodingError struct {
	Path   string
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in %s at byte %d", e.Path, e.Offset)
}
