package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds the ambient options that never change which lines match
type Settings struct {
	// Verbose is the logging verbosity level
	Verbose int

	// Color controls match highlighting
	Color ColorMode
}

// validColorModes contains the list of supported colour modes
var validColorModes = map[ColorMode]bool{
	ColorNever:  true,
	ColorAlways: true,
	ColorAuto:   true,
}

// LoadSettings resolves settings from flags, MINIGREP_* environment variables and
// defaults, in that order of precedence. Flags that were not set on the command
// line do not override the environment. flags may be nil.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("verbose", DefaultVerbose)
	v.SetDefault("color", string(DefaultColor))

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.BindEnv("verbose")
	v.BindEnv("color")

	if flags != nil {
		for _, name := range []string{"verbose", "color"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return Settings{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	verbose, err := parseVerbosity(v.GetString("verbose"))
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Verbose: verbose,
		Color:   ColorMode(strings.ToLower(strings.TrimSpace(v.GetString("color")))),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks if the settings are valid
func (s Settings) Validate() error {
	if s.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	if !validColorModes[s.Color] {
		return fmt.Errorf("invalid color mode %q: must be one of [never always auto]", s.Color)
	}

	return nil
}

// parseVerbosity accepts either a number or a string of 'v's
func parseVerbosity(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultVerbose, nil
	}

	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}

	if strings.Trim(value, "v") != "" {
		return 0, fmt.Errorf("invalid verbosity %q: use a number or a string of 'v's", value)
	}

	return len(value), nil
}
