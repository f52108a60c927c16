package simulation

import (
	"io"
	"strings"

	"github.com/tochemey/goakt/v3/log"
)

// NewLogger returns the zap-backed goakt logger used by the actor system and
// the hosts. Unknown level names fall back to info.
func NewLogger(level string, w io.Writer) log.Logger {
	return log.New(ParseLogLevel(level), w)
}

// ParseLogLevel maps the config names debug, info, warn and error.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarningLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
