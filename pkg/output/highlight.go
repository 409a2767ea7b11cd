package output

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// highlighter wraps occurrences of a query in ANSI colour sequences
type highlighter struct {
	query      string
	runes      int
	ignoreCase bool
	color      *color.Color
}

func newHighlighter(query string, ignoreCase bool) *highlighter {
	c := color.New(color.FgRed, color.Bold)
	// colour was requested explicitly, so skip fatih/color tty detection
	c.EnableColor()

	return &highlighter{
		query:      query,
		runes:      utf8.RuneCountInString(query),
		ignoreCase: ignoreCase,
		color:      c,
	}
}

// highlight returns line with every located occurrence of the query coloured
func (h *highlighter) highlight(line string) string {
	spans := h.spans(line)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s[0]])
		b.WriteString(h.color.Sprint(line[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// spans returns non-overlapping [start, end) byte ranges of the query in line.
// Case-insensitive ranges are found with simple case folding over windows of
// the query's rune length; lines matched only through a length-changing
// lowercase mapping get no ranges.
func (h *highlighter) spans(line string) [][2]int {
	if h.query == "" {
		return nil
	}

	var spans [][2]int

	if !h.ignoreCase {
		for off := 0; off < len(line); {
			i := strings.Index(line[off:], h.query)
			if i < 0 {
				break
			}
			start := off + i
			end := start + len(h.query)
			spans = append(spans, [2]int{start, end})
			off = end
		}
		return spans
	}

	for i := 0; i < len(line); {
		end, n := i, 0
		for end < len(line) && n < h.runes {
			_, size := utf8.DecodeRuneInString(line[end:])
			end += size
			n++
		}
		if n < h.runes {
			break
		}

		if strings.EqualFold(line[i:end], h.query) {
			spans = append(spans, [2]int{i, end})
			i = end
			continue
		}

		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}

	return spans
}
