// Package debuglog is the diagnostic output switch for debug builds. While
// disabled (the default) every call is a no-op; once enabled, messages are
// written as single lines prefixed with "[DEBUG] ".
package debuglog

import (
	"io"
	"log"
)

const prefix = "[DEBUG] "

// std is nil while diagnostics are disabled.
var std *log.Logger

// Enable routes diagnostic lines to w.
func Enable(w io.Writer) {
	std = log.New(w, prefix, 0)
}

// Disable discards all diagnostic output again.
func Disable() {
	std = nil
}

func Enabled() bool {
	return std != nil
}

// Printf writes one diagnostic line. No-op while disabled.
func Printf(format string, v ...any) {
	if std == nil {
		return
	}
	std.Printf(format, v...)
}
