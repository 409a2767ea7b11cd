/*
Package output writes search results to a stream, one line per record.

Basic usage:

	printer := output.NewPrinter(output.Config{
		Query:      "duct",
		IgnoreCase: false,
		Color:      false,
	}, os.Stdout, log)

	err := printer.Print(lines)

Each line is written exactly as given and followed by "\n". With Color enabled,
occurrences of the query inside each line are highlighted; the set and order of
printed lines never changes.
*/
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ethandpowers/minigrep/pkg/logger"
)

// Config holds printer configuration
type Config struct {
	// Query is the searched text, used for highlighting
	Query string

	// IgnoreCase highlights case-insensitive occurrences of Query
	IgnoreCase bool

	// Color enables highlighting of matches
	Color bool
}

// Printer defines the interface for writing search results
type Printer interface {
	Print(lines []string) error
}

// printer implements the Printer interface
type printer struct {
	config Config
	out    io.Writer
	log    logger.Logger
	hl     *highlighter
}

// NewPrinter creates a new printer writing to out
func NewPrinter(config Config, out io.Writer, log logger.Logger) Printer {
	p := &printer{
		config: config,
		out:    out,
		log:    log,
	}
	if config.Color {
		p.hl = newHighlighter(config.Query, config.IgnoreCase)
	}
	return p
}

// Print writes every line followed by a newline, in the given order
func (p *printer) Print(lines []string) error {
	p.log.WithFields(logger.Fields{
		"lines": len(lines),
		"color": p.config.Color,
	}).Debug("Writing results")

	w := bufio.NewWriter(p.out)
	for _, line := range lines {
		if p.hl != nil {
			line = p.hl.highlight(line)
		}
		if _, err := w.WriteString(line); err != nil {
			return p.writeFailed(err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return p.writeFailed(err)
		}
	}

	if err := w.Flush(); err != nil {
		return p.writeFailed(err)
	}

	return nil
}

func (p *printer) writeFailed(err error) error {
	p.log.WithFields(logger.Fields{
		"error": err,
	}).Debug("Failed to write results")
	return fmt.Errorf("failed to write results: %w", err)
}
