// Package logging configures the process-wide log level. The level is a
// single atomic word inside logrus; it is set once at startup from the
// --log-level flag or the KV_LOG_LEVEL environment variable.
package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// EnvVar overrides the log level when the flag is not given.
const EnvVar = "KV_LOG_LEVEL"

// ParseLevel maps the accepted spellings onto logrus levels:
// none|off|0, info|1, debug|2, case-insensitive. Anything else, including
// the empty string, falls back to debug, the most verbose level.
func ParseLevel(value string) log.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none", "off", "0":
		// Nothing below panic is emitted.
		return log.PanicLevel
	case "info", "1":
		return log.InfoLevel
	case "debug", "2":
		return log.DebugLevel
	default:
		return log.DebugLevel
	}
}

// Init sets the global level from the flag value, the environment, or the
// default, in that order.
func Init(flagValue string) {
	value := flagValue
	if value == "" {
		value = os.Getenv(EnvVar)
	}
	if value == "" {
		value = "info"
	}
	log.SetLevel(ParseLevel(value))
}
