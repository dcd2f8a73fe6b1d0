// Package logger provides the leveled logger used by the command-line
// tools and the benchmark harness. The algorithm packages stay log-free.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

// defaultLogFormat is shared by every module so the tools produce a
// uniform diagnostic stream on stderr.
const defaultLogFormat = "%{time:15:04:05.000} %{color}%{level:-8s}%{color:reset} %{module}: %{message}"

// NewLogger creates a logger for the given module at the given level.
// Unknown level names fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)
	// Logger.IsEnabledFor consults the package-level backend, so the module
	// level is registered there as well.
	logging.SetLevel(lvl, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}
