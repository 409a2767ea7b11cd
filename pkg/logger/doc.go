/*
Package logger provides structured logging for minigrep. It wraps uber-go/zap
behind a small interface with verbosity levels and field-based context.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (WARN)
	})

	log.Warn("Something unexpected")
	log.Info("Search finished")       // Only shown with verbosity >= 1
	log.Debug("Reading file")         // Only shown with verbosity >= 2
	log.Trace("Line matched")         // Only shown with verbosity >= 3

Verbosity Levels:

	0: Warn, Error (default)
	1: Info + Level 0
	2: Debug + Level 1
	3: Trace + Level 2

Structured Logging:

	log.WithFields(logger.Fields{
	    "path":    "poem.txt",
	    "matches": 2,
	}).Info("Search completed")

Output Example (JSON, written to stderr):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Search completed",
	    "path": "poem.txt",
	    "matches": 2
	}

The default level is warn so that a successful run writes nothing to stderr and a
failed one writes only its diagnostic. Raise it with -v or MINIGREP_VERBOSE.
*/
package logger
