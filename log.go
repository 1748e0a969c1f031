package dynalign

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level structured logger every entry point writes
// its engine-selection and pool-resize diagnostics to (spec.md §1
// EXPANSION: the ambient logging stack). It defaults to zerolog's
// human-readable console writer on stderr; set DYNALIGN_LOG_FORMAT=json
// for zerolog's compact JSON writer instead, mirroring the
// teacher's own Verbose/Vprint toggle (misc.go) but as a real
// structured-logging library rather than a raw stdout gate.
var Log = newLogger()

func newLogger() zerolog.Logger {
	var w = zerolog.ConsoleWriter{Out: os.Stderr}
	if os.Getenv("DYNALIGN_LOG_FORMAT") == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
