package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel maps a level name to a Level. Names are case-insensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

// sink is shared between a logger and the children created by Named.
type sink struct {
	mu       sync.Mutex
	debugLog *log.Logger
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
}

type Logger struct {
	level     Level
	component string
	out       *sink
}

// New creates a logger writing to stderr. Unknown level names fall back to INFO.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a logger writing every level to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = INFO
	}

	flags := log.LstdFlags | log.Lmicroseconds

	return &Logger{
		level: lvl,
		out: &sink{
			debugLog: log.New(w, "[DEBUG] ", flags),
			infoLog:  log.New(w, "[INFO] ", flags),
			warnLog:  log.New(w, "[WARN] ", flags),
			errorLog: log.New(w, "[ERROR] ", flags),
		},
	}
}

// Named returns a child logger whose lines start with "component: ".
func (l *Logger) Named(component string) *Logger {
	name := component
	if l.component != "" {
		name = l.component + "." + component
	}
	return &Logger{level: l.level, component: name, out: l.out}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Enabled(level Level) bool {
	return l.level <= level
}

func (l *Logger) write(level Level, target *log.Logger, format string, args []interface{}) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.component != "" {
		msg = l.component + ": " + msg
	}
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	target.Output(3, msg)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(DEBUG, l.out.debugLog, format, args)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.write(INFO, l.out.infoLog, format, args)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(WARN, l.out.warnLog, format, args)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write(ERROR, l.out.errorLog, format, args)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(DEBUG, l.out.debugLog, format, args)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(INFO, l.out.infoLog, format, args)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(WARN, l.out.warnLog, format, args)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(ERROR, l.out.errorLog, format, args)
}

// Fields renders ctx as space separated key=value pairs, sorted by key.
func Fields(ctx map[string]interface{}) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ctx[k]))
	}
	return strings.Join(parts, " ")
}
