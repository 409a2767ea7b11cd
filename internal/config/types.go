package config

// ColorMode controls highlighting of matches on stdout
type ColorMode string

const (
	// ColorNever prints matching lines exactly as they appear in the file
	ColorNever ColorMode = "never"

	// ColorAlways highlights matches regardless of the output destination
	ColorAlways ColorMode = "always"

	// ColorAuto highlights matches only when stdout is a terminal
	ColorAuto ColorMode = "auto"
)

// Environment variable names
const (
	// IgnoreCaseEnv enables case-insensitive search when present, whatever its value
	IgnoreCaseEnv = "IGNORE_CASE"

	// EnvPrefix prefixes the variables read by LoadSettings
	EnvPrefix = "MINIGREP"
)

// Constants for setting defaults
const (
	// DefaultColor is the colour mode used when nothing else is configured
	DefaultColor = ColorNever

	// DefaultVerbose keeps logging to warnings and errors
	DefaultVerbose = 0
)
