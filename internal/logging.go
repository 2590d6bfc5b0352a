package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the structured logger threaded through RunSourceColored
// and the REPL (SPEC_FULL.md §2 "structured diagnostics"), reviving the
// teacher's go.mod dependency on logrus, which the teacher's own tree never
// imported. Debug-level output is silenced unless debug is true or
// LOXWALK_DEBUG is set, so ordinary runs stay quiet.
func NewLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if debug || os.Getenv("LOXWALK_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
		log.SetOutput(os.Stderr)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetOutput(io.Discard)
	}

	return log
}
