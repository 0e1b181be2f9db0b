package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes one tagged, colored line per event.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	exit  func(int)
}

func NewLogger() *Logger {
	return New(os.Stdout, LevelInfo)
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level, exit: os.Exit}
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

var (
	debugColor = color.New(color.FgHiBlack)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
	tagColor   = color.New(color.FgCyan)
)

func (l *Logger) Debug(tag, msg string) { l.write(LevelDebug, debugColor, "DEBUG", tag, msg) }
func (l *Logger) Info(tag, msg string)  { l.write(LevelInfo, infoColor, "INFO", tag, msg) }
func (l *Logger) Warn(tag, msg string)  { l.write(LevelWarn, warnColor, "WARN", tag, msg) }
func (l *Logger) Error(tag, msg string) { l.write(LevelError, errorColor, "ERROR", tag, msg) }

// Fatal logs and terminates the process.
func (l *Logger) Fatal(tag, msg string) {
	l.write(LevelError, errorColor, "FATAL", tag, msg)
	l.exit(1)
}

func (l *Logger) Infof(tag, format string, args ...any) {
	l.Info(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(tag, format string, args ...any) {
	l.Error(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) write(level Level, c *color.Color, label, tag, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s %s %s %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		c.Sprintf("%-5s", label),
		tagColor.Sprintf("[%s]", strings.ToUpper(tag)),
		msg,
	)
}
