/*
Package app provides the application container for minigrep. It owns the
collaborators of a search run: the filesystem the file is read from, the writer
results go to, and the logger.

Usage:

	application := app.New(&cfg, afero.NewOsFs(), os.Stdout, log)
	if err := application.Run(); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/ethandpowers/minigrep/internal/config"
	"github.com/ethandpowers/minigrep/pkg/logger"
	"github.com/ethandpowers/minigrep/pkg/output"
	"github.com/ethandpowers/minigrep/pkg/search"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger
	fs     afero.Fs
	out    io.Writer
}

// New creates a new application instance
func New(cfg *config.Config, fs afero.Fs, out io.Writer, log logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}

	a := &App{
		config: cfg,
		log:    log,
		fs:     fs,
		out:    out,
	}

	a.log.WithFields(logger.Fields{
		"config": cfg.String(),
	}).Debug("Application initialized")

	return a
}

// Run reads the configured file, searches it and writes the matching lines.
// Read errors are returned unchanged. Nothing is written unless the whole file
// was read successfully.
func (a *App) Run() error {
	a.log.WithFields(logger.Fields{
		"path": a.config.FilePath,
	}).Debug("Reading file")

	contents, err := search.Load(a.fs, a.config.FilePath)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  a.config.FilePath,
		}).Debug("Failed to read file")
		return err
	}

	a.log.WithFields(logger.Fields{
		"path":       a.config.FilePath,
		"size":       len(contents),
		"ignoreCase": a.config.IgnoreCase,
	}).Debug("Searching contents")

	var results []string
	if a.config.IgnoreCase {
		results = search.SearchCaseInsensitive(a.config.Query, contents)
	} else {
		results = search.Search(a.config.Query, contents)
	}

	printer := output.NewPrinter(output.Config{
		Query:      a.config.Query,
		IgnoreCase: a.config.IgnoreCase,
		Color:      a.useColor(),
	}, a.out, a.log)

	if err := printer.Print(results); err != nil {
		return err
	}

	a.log.WithFields(logger.Fields{
		"path":    a.config.FilePath,
		"matches": len(results),
	}).Info("Search completed")

	return nil
}

// useColor resolves the configured colour mode against the output destination
func (a *App) useColor() bool {
	switch a.config.Color {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return a.isTerminal()
	default:
		return false
	}
}

// isTerminal checks if the output is going to a terminal
func (a *App) isTerminal() bool {
	f, ok := a.out.(*os.File)
	if !ok {
		return false
	}

	if term.IsTerminal(int(f.Fd())) {
		a.log.Debug("Output is going to a terminal")
		return true
	}
	a.log.Debug("Output is not going to a terminal")
	return false
}
