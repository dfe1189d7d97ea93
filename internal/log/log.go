// Package log is the leveled stderr logger used by the CLI. The rule code
// itself stays silent; logging happens at the tool boundary.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

var (
	mu       sync.Mutex
	writer   io.Writer = os.Stderr
	minLevel           = LevelInfo
)

// SetOutput redirects log output, primarily for tests. A nil writer silences
// the logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

// SetLevel sets the minimum level that is written.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// GetLevel returns the current minimum level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Debug logs verbose diagnostic detail.
func Debug(format string, args ...any) { write(LevelDebug, format, args...) }

// Info logs operational events.
func Info(format string, args ...any) { write(LevelInfo, format, args...) }

// Warn logs problems that do not stop the tool.
func Warn(format string, args ...any) { write(LevelWarn, format, args...) }

// Error logs failures.
func Error(format string, args ...any) { write(LevelError, format, args...) }

func write(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel || writer == nil {
		return
	}
	fmt.Fprintf(writer, "[unocss] "+level.String()+": "+format+"\n", args...)
}
