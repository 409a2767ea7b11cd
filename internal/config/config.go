package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMissingQuery is returned when the arguments hold no query string
	ErrMissingQuery = errors.New("didn't get a query string")

	// ErrMissingFilePath is returned when the arguments hold no file path
	ErrMissingFilePath = errors.New("didn't get a file path")
)

// LookupEnv reports the value of an environment variable and whether it is set
type LookupEnv func(key string) (string, bool)

// OSLookupEnv reads the process environment
var OSLookupEnv LookupEnv = os.LookupEnv

// Config holds everything a single search invocation needs
type Config struct {
	// Query is the text searched for in every line
	Query string

	// FilePath is the file to search; it is not checked until it is read
	FilePath string

	// IgnoreCase selects the case-insensitive search
	IgnoreCase bool

	// Verbose sets the logging verbosity
	Verbose int

	// Color controls match highlighting on stdout
	Color ColorMode
}

// Build creates a Config from a program argument list and an environment lookup.
// The first argument is the program name and is skipped. The query and the file
// path follow it; any further arguments are ignored. IgnoreCase is set when
// IGNORE_CASE is present in the environment, even with an empty value.
func Build(args []string, lookup LookupEnv) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingFilePath
	}

	if lookup == nil {
		lookup = OSLookupEnv
	}
	_, ignoreCase := lookup(IgnoreCaseEnv)

	return Config{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: ignoreCase,
		Verbose:    DefaultVerbose,
		Color:      DefaultColor,
	}, nil
}

// Apply copies resolved settings onto the configuration
func (c *Config) Apply(s Settings) {
	c.Verbose = s.Verbose
	c.Color = s.Color
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Query: %q, FilePath: %s, IgnoreCase: %v, Verbose: %d, Color: %s}",
		c.Query, c.FilePath, c.IgnoreCase, c.Verbose, c.Color,
	)
}
