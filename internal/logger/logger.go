// Package logger provides process-wide logging for skosmap.
//
// Messages are filtered by level. The default level is LevelWarn, so only
// warnings reach the output: they report operations that were skipped, such
// as saving to a registry that cannot be resolved. The --verbose flag raises
// the level to LevelDebug.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the most detailed kind of message that is written.
type Level int

// Log levels, from least to most detailed.
const (
	LevelWarn Level = iota
	LevelInfo
	LevelDebug
)

// String returns the tag written in front of messages of this level.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

var (
	mu     sync.RWMutex
	level  = LevelWarn
	output io.Writer = os.Stderr
)

// SetLevel sets the most detailed level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetVerbose switches between LevelDebug and LevelWarn.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// IsVerbose reports whether debug messages are written.
func IsVerbose() bool {
	return GetLevel() >= LevelDebug
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(l Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l > level {
		return
	}
	fmt.Fprintf(output, "["+l.String()+"] "+format+"\n", args...)
}

// Debug writes a message at LevelDebug.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info writes a message at LevelInfo.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn writes a message at LevelWarn, which is always enabled.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Section writes a header separating phases of a verbose run.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if level < LevelDebug {
		return
	}
	fmt.Fprintf(output, "\n=== %s ===\n", name)
}
