package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "minui-list.log"

var (
	mu           sync.Mutex
	logger       = zap.NewNop()
	errLogger    = zap.NewNop() // log file only
	tracer       = zap.NewNop()
	level        = zapcore.WarnLevel
	traceEnabled bool
	logPath      = defaultLogFile
	closers      []func()
)

// Configure sets the log destination and verbosity. Diagnostics always go to
// stderr at the given level; when path is non-empty they are also appended to
// that file as JSON. An empty level means "warn".
func Configure(path, levelName string) error {
	lvl, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	closeLocked()

	logPath = defaultLogFile
	level = lvl
	console := consoleCore(lvl)
	logger = zap.New(console)
	errLogger = zap.NewNop()
	if strings.TrimSpace(path) != "" {
		sink, err := openSink(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		} else {
			logPath = path
			file := zapcore.NewCore(jsonEncoder(), sink, lvl)
			logger = zap.New(zapcore.NewTee(console, file))
			errLogger = zap.New(file)
		}
	}
	if traceEnabled {
		enableTraceLocked()
	}
	return nil
}

// ParseLevel maps a level name onto a zap level. Empty values mean "warn".
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	traceEnabled = enabled
	if enabled {
		enableTraceLocked()
		return
	}
	tracer = zap.NewNop()
}

// TraceEnabled reports whether trace entries are currently written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the log file when tracing is
// enabled. Trace entries never reach stderr so they cannot corrupt the TUI.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	t := tracer
	mu.Unlock()
	if !enabled {
		return
	}
	t.Debug("trace", zap.String("event", event), zap.Any("payload", payload))
}

// Error appends err to the log file. It never writes to stderr, so the
// caller's own report stays the only one the user sees.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := errLogger
	mu.Unlock()
	l.Error(err.Error())
}

func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	current().Debug(msg, fields...)
}

// SetLogger swaps the shared logger and returns a function restoring the
// previous one. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) func() {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	prev, prevErr := logger, errLogger
	logger, errLogger = l, l
	mu.Unlock()
	return func() {
		mu.Lock()
		logger, errLogger = prev, prevErr
		mu.Unlock()
	}
}

// Sync flushes buffered entries and releases open log files. Later entries
// only reach stderr.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	_ = errLogger.Sync()
	_ = tracer.Sync()
	if len(closers) == 0 {
		return
	}
	closeLocked()
	logger = zap.New(consoleCore(level))
	errLogger = zap.NewNop()
	tracer = zap.NewNop()
}

func current() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func enableTraceLocked() {
	sink, err := openSink(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		tracer = zap.NewNop()
		return
	}
	tracer = zap.New(zapcore.NewCore(jsonEncoder(), sink, zapcore.DebugLevel))
}

func openSink(path string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	closers = append(closers, func() { _ = f.Close() })
	return zapcore.Lock(f), nil
}

func closeLocked() {
	for _, c := range closers {
		c()
	}
	closers = nil
}

func consoleCore(lvl zapcore.Level) zapcore.Core {
	return zapcore.NewCore(consoleEncoder(), zapcore.Lock(os.Stderr), lvl)
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func jsonEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.TimeKey = "time"
	return zapcore.NewJSONEncoder(cfg)
}
