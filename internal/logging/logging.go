package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logger. Logs go to stderr so they never mix
// with the report on stdout.
func Setup(verbose bool, format string) error {
	return SetupWriter(os.Stderr, verbose, format)
}

func SetupWriter(w io.Writer, verbose bool, format string) error {
	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			DisableLevelTruncation: true,
		})
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	log.SetOutput(w)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	return nil
}
