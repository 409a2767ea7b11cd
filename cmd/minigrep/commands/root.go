/*
Package commands implements the minigrep command line. There is a single root
command taking a query and a file path; it has no subcommands so that any word,
including "help" or "version", can be searched for.
*/
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ethandpowers/minigrep/cmd/minigrep/app"
	"github.com/ethandpowers/minigrep/internal/config"
	"github.com/ethandpowers/minigrep/internal/version"
	"github.com/ethandpowers/minigrep/pkg/logger"
)

// Options holds the collaborators the command runs against
type Options struct {
	// Fs is the filesystem the searched file is read from
	Fs afero.Fs

	// LookupEnv reads the IGNORE_CASE toggle
	LookupEnv config.LookupEnv

	// ProgramName is reported as the first argument to config.Build
	ProgramName string

	buildInfo string
}

// NewRootCommand creates the root command for the application
func NewRootCommand(opts *Options) *cobra.Command {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = config.OSLookupEnv
	}
	if opts.ProgramName == "" {
		opts.ProgramName = "minigrep"
	}

	rootCmd := &cobra.Command{
		Use:   opts.ProgramName + " [flags] <query> <file>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query, in file order.

Matching is case-sensitive unless IGNORE_CASE is set in the environment (any
value, including an empty one, enables case-insensitive matching).

Environment Variables:
  IGNORE_CASE        Enable case-insensitive matching when present
  MINIGREP_VERBOSE   Verbosity level (number or string of 'v's)
  MINIGREP_COLOR     Match highlighting: never|always|auto

Examples:
  minigrep to poem.txt
  IGNORE_CASE=1 minigrep to poem.txt
  minigrep -- -flag notes.txt`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	rootCmd.Flags().CountP("verbose", "v",
		"increase log verbosity on stderr (can be used multiple times)")
	rootCmd.Flags().String("color", string(config.DefaultColor),
		"highlight matches: never|always|auto")
	rootCmd.Flags().StringVar(&opts.buildInfo, "build-info", "",
		"print build information (text|json|yaml) and exit")
	rootCmd.Flags().Lookup("build-info").NoOptDefVal = string(version.FormatText)

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return rootCmd
}

func runSearch(cmd *cobra.Command, args []string, opts *Options) error {
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: settings.Verbose,
		Output:    cmd.ErrOrStderr(),
	})
	defer logger.Sync(log)

	if opts.buildInfo != "" {
		return printBuildInfo(cmd.OutOrStdout(), version.Format(opts.buildInfo))
	}

	log.WithFields(logger.Fields{
		"args":      args,
		"verbosity": settings.Verbose,
		"color":     settings.Color,
	}).Debug("Initializing command")

	cfg, err := config.Build(append([]string{opts.ProgramName}, args...), opts.LookupEnv)
	if err != nil {
		log.WithFields(logger.Fields{
			"error": err,
		}).Debug("Failed to build configuration")
		return fmt.Errorf("problem parsing arguments: %w", err)
	}
	cfg.Apply(settings)

	if err := app.New(&cfg, opts.Fs, cmd.OutOrStdout(), log).Run(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}

	return nil
}

func printBuildInfo(out io.Writer, format version.Format) error {
	rendered, err := version.Render(version.GetBuildInfo(), format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
