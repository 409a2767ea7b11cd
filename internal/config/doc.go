// Package config builds the configuration for a minigrep invocation.
//
// # Search Configuration
//
// Build turns the program's argument list into a Config. The first element is the
// program name and is skipped; the query and the file path follow:
//
//	cfg, err := config.Build(os.Args, config.OSLookupEnv)
//	if err != nil {
//	    // config.ErrMissingQuery or config.ErrMissingFilePath
//	    log.Fatal(err)
//	}
//
// Case-insensitive search is enabled by the presence of IGNORE_CASE in the
// environment. Only presence is checked, so IGNORE_CASE= (empty) enables it too:
//
//	IGNORE_CASE=1 minigrep to poem.txt
//
// The lookup is passed in explicitly so tests can supply their own environment:
//
//	env := map[string]string{"IGNORE_CASE": ""}
//	cfg, _ := config.Build(args, func(k string) (string, bool) {
//	    v, ok := env[k]
//	    return v, ok
//	})
//
// # Settings
//
// LoadSettings resolves ambient options with viper. Command-line flags win over
// the environment, which wins over defaults:
//
//	MINIGREP_VERBOSE   Verbosity level (a number or a string of 'v's)
//	MINIGREP_COLOR     Match highlighting: never|always|auto (default: never)
//
// Settings never change which lines match.
package config
