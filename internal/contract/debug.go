package contract

import (
	"log"
	"os"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "COMPAREVIEW_DEBUG"

var debugLogger *log.Logger

func init() {
	if os.Getenv(DebugEnv) != "" {
		SetDebug(true)
	}
}

// SetDebug turns debug logging on or off.
func SetDebug(enabled bool) {
	if !enabled {
		debugLogger = nil
		return
	}
	if debugLogger == nil {
		debugLogger = log.New(os.Stderr, "[COMPAREVIEW_DEBUG] ", log.Ltime|log.Lmicroseconds)
	}
}

// DebugEnabled reports whether debug logging is on.
func DebugEnabled() bool { return debugLogger != nil }

// Debugf writes a debug message when debug logging is enabled.
func Debugf(format string, args ...any) {
	if debugLogger == nil {
		return
	}
	debugLogger.Printf(format, args...)
}
