package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// writer is an io.Writer that splits its input stream into lines and writes
// those lines to an underlying logger.
type writer struct {
	// callback is the logging callback.
	callback func(string)
	// buffer is any incomplete line fragment left over from a previous write.
	buffer []byte
}

// trimCarriageReturn trims any single trailing carriage return from the end
// of a byte slice.
func trimCarriageReturn(buffer []byte) []byte {
	if len(buffer) > 0 && buffer[len(buffer)-1] == '\r' {
		return buffer[:len(buffer)-1]
	}
	return buffer
}

// Write implements io.Writer.Write.
func (w *writer) Write(buffer []byte) (int, error) {
	w.buffer = append(w.buffer, buffer...)

	var processed int
	remaining := w.buffer
	for {
		index := bytes.IndexByte(remaining, '\n')
		if index == -1 {
			break
		}
		w.callback(string(trimCarriageReturn(remaining[:index])))
		processed += index + 1
		remaining = remaining[index+1:]
	}

	if processed > 0 {
		leftover := len(w.buffer) - processed
		if leftover > 0 {
			copy(w.buffer[:leftover], w.buffer[processed:])
		}
		w.buffer = w.buffer[:leftover]
	}

	return len(buffer), nil
}

// Logger is the main logger type. It has the property that it still
// functions if nil, but logs nothing in that case, so that call sites never
// need a nil check before logging. Every method filters against the
// logger's configured Level. It is built on the standard library's log
// package, so it respects any flags set for that logger. It is safe for
// concurrent use.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
	// level is the level at or below which this logger emits output.
	level Level
}

// RootLogger is the root logger from which all other loggers derive. It
// defaults to LevelInfo; NewRootLogger replaces it at startup once the
// configured level is known.
var RootLogger = &Logger{level: LevelInfo}

// NewRootLogger constructs a root logger at the given level. Callers
// typically assign the result to RootLogger during startup, before any
// sublogger is created from it.
func NewRootLogger(level Level) *Logger {
	return &Logger{level: level}
}

// Sublogger creates a new sublogger with the specified name, inheriting the
// parent's level.
func (l *Logger) Sublogger(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}
	return &Logger{prefix: prefix, level: l.level}
}

// Level reports the logger's configured level. It returns LevelDisabled for
// a nil logger.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// enabled reports whether the logger should emit output at the given level.
func (l *Logger) enabled(level Level) bool {
	return l != nil && level <= l.level && level != LevelDisabled
}

// output is the internal logging method.
func (l *Logger) output(calldepth int, line string) {
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	log.Output(calldepth, line)
}

// Info logs information with semantics equivalent to fmt.Print, if the
// logger's level is LevelInfo or above.
func (l *Logger) Info(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(3, fmt.Sprint(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf, if the
// logger's level is LevelInfo or above.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Print, if the
// logger's level is LevelDebug or above.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(3, fmt.Sprint(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, if the
// logger's level is LevelDebug or above.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// DebugWriter returns an io.Writer that writes lines using Debug, or a
// discarding writer if debug logging is disabled.
func (l *Logger) DebugWriter() io.Writer {
	if !l.enabled(LevelDebug) {
		return io.Discard
	}
	return &writer{callback: func(s string) { l.Debug(s) }}
}

// Warnf logs a warning with semantics equivalent to fmt.Sprintf, in yellow,
// if the logger's level is LevelWarn or above.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.output(3, color.YellowString("warning: "+format, v...))
	}
}

// Warn logs error information with a warning prefix and yellow color, if the
// logger's level is LevelWarn or above.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.output(3, color.YellowString("warning: %v", err))
	}
}

// Errorf logs an error with semantics equivalent to fmt.Sprintf, in red, if
// the logger's level is LevelError or above.
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.enabled(LevelError) {
		l.output(3, color.RedString("error: "+format, v...))
	}
}

// Error logs error information with an error prefix and red color, if the
// logger's level is LevelError or above.
func (l *Logger) Error(err error) {
	if l.enabled(LevelError) {
		l.output(3, color.RedString("error: %v", err))
	}
}
