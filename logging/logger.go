package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ANSI colours, used only when the logger writes to a terminal
const (
	red    = "\033[1;91m"
	green  = "\033[1;92m"
	yellow = "\033[1;93m"
	blue   = "\033[1;94m"
	cyan   = "\033[1;96m"
	reset  = "\033[0m"
)

// Options configures a Logger
type Options struct {
	Verbose bool
	LogFile string
	Color   bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// Sink receives every formatted line without colour codes
type Sink func(level, text string)

// Logger provides leveled, optionally coloured logging with an optional file
// and any number of in-process sinks.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	color   bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File
	sinks   []Sink
}

// New builds a logger. Colour is enabled only when requested, stdout is a
// terminal and NO_COLOR is unset. Call Close when a log file was opened.
func New(opts Options) (*Logger, error) {
	l := &Logger{
		verbose: opts.Verbose,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
	}
	if l.stdout == nil {
		l.stdout = os.Stdout
	}
	if l.stderr == nil {
		l.stderr = os.Stderr
	}
	l.color = opts.Color && isTerminal(l.stdout) && os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// Discard returns a logger that writes nowhere except its sinks
func Discard() *Logger {
	return &Logger{stdout: io.Discard, stderr: io.Discard}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// AddSink registers fn to receive every line logged from now on
func (l *Logger) AddSink(fn Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, fn)
}

// SetVerbose toggles Debug output
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	l.verbose = v
	l.mu.Unlock()
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	sinks := l.sinks
	out := l.stdout
	if level == "ERROR" {
		out = l.stderr
	}
	plain := ts + " [" + level + "] " + text + "\n"
	if l.color {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+reset+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
	l.mu.Unlock()

	for _, s := range sinks {
		s(level, text)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	v := l.verbose
	l.mu.Unlock()
	if !v {
		return
	}
	l.line("DEBUG", cyan, fmt.Sprintf(format, args...))
}
