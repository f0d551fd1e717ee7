//go:build !baremetal

package console

import (
	"io"
	"strings"

	logxi "github.com/mgutz/logxi/v1"
)

var levels = map[string]int{
	"trace": logxi.LevelTrace,
	"debug": logxi.LevelDebug,
	"info":  logxi.LevelInfo,
	"warn":  logxi.LevelWarn,
	"error": logxi.LevelError,
	"fatal": logxi.LevelFatal,
}

// NewLogger creates a logxi logger writing to w. An empty or unknown level
// leaves the LOGXI environment setting in charge.
func NewLogger(w io.Writer, name, level string) logxi.Logger {
	logger := logxi.NewLogger(logxi.NewConcurrentWriter(w), name)
	if lvl, ok := levels[strings.ToLower(level)]; ok {
		logger.SetLevel(lvl)
	}
	return logger
}
