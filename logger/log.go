// Package logger provides a levelled text logger.
//
// It is intended for internal use by load-secrets-action only.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	nocolor = "0"
	red     = "31"
	yellow  = "33"
	gray    = "38;5;251"
	cyan    = "1;36"
)

const DateFormat = "2006-01-02 15:04:05"

var mutex = sync.Mutex{}

type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Fatal(format string, v ...any)

	SetLevel(level Level)
	GetLevel() Level
}

type TextLogger struct {
	Level  Level
	Colors bool
	Writer io.Writer
	ExitFn func(code int)
}

func NewTextLogger() *TextLogger {
	return &TextLogger{
		Level:  INFO,
		Colors: ColorsAvailable(),
		Writer: os.Stderr,
	}
}

// ColorsAvailable reports whether stderr is a terminal that can show colors.
func ColorsAvailable() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func (l *TextLogger) SetLevel(level Level) {
	l.Level = level
}

func (l *TextLogger) GetLevel() Level {
	return l.Level
}

func (l *TextLogger) Debug(format string, v ...any) {
	if l.Level <= DEBUG {
		l.log(DEBUG, format, v...)
	}
}

func (l *TextLogger) Info(format string, v ...any) {
	if l.Level <= INFO {
		l.log(INFO, format, v...)
	}
}

func (l *TextLogger) Warn(format string, v ...any) {
	if l.Level <= WARN {
		l.log(WARN, format, v...)
	}
}

func (l *TextLogger) Error(format string, v ...any) {
	l.log(ERROR, format, v...)
}

func (l *TextLogger) Fatal(format string, v ...any) {
	l.log(FATAL, format, v...)
	if l.ExitFn != nil {
		l.ExitFn(1)
		return
	}
	os.Exit(1)
}

func (l *TextLogger) log(level Level, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	now := time.Now().Format(DateFormat)
	line := ""

	if l.Colors {
		levelColor := cyan
		messageColor := nocolor

		switch level {
		case DEBUG:
			levelColor = gray
			messageColor = gray
		case WARN:
			levelColor = yellow
		case ERROR, FATAL:
			levelColor = red
			messageColor = red
		}

		line = fmt.Sprintf("\x1b[%sm%s %-6s\x1b[0m \x1b[%sm%s\x1b[0m\n", levelColor, now, level, messageColor, message)
	} else {
		line = fmt.Sprintf("%s %-6s %s\n", now, level, message)
	}

	// Make sure we're only outputting a line one at a time
	mutex.Lock()
	fmt.Fprint(l.Writer, line)
	mutex.Unlock()
}

var Discard Logger = &TextLogger{
	Writer: io.Discard,
	Level:  FATAL,
	ExitFn: func(int) {},
}
