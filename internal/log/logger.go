package log

import (
	"io"
	"os"
	"sync"
	"time"

	serr "mdtui/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.Mutex
	logger = NewLogger()
)

// Field is a single structured key/value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out   io.Writer
	json  bool
	file  string
	level logrus.Level
}

// Option configures a Logger
type Option func(*options)

// WithOutput sends log entries to w
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithJSON switches to one JSON object per line
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithFile appends log entries to the file at path instead of the output writer
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithLevel sets the minimum level by name ("debug", "info", "warn", "error").
// Unknown names leave the level unchanged.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// Logger is a structured logger backed by logrus
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger creates a logger. If a log file cannot be opened the logger falls
// back to the configured output writer.
func NewLogger(opts ...Option) *Logger {
	l, _ := newLogger(opts...)
	return l
}

func newLogger(opts ...Option) (*Logger, error) {
	o := options{
		out:   os.Stderr,
		level: logrus.InfoLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetLevel(o.level)
	base.SetOutput(o.out)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l := &Logger{entry: logrus.NewEntry(base)}
	if o.file == "" {
		return l, nil
	}

	f, err := os.OpenFile(o.file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return l, serr.FromOS("failed to open log file", o.file, err, serr.FileWriteFailed)
	}
	base.SetOutput(f)
	l.file = f
	return l, nil
}

// With returns a child logger carrying the given fields
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithError returns a child logger describing err.
// Application errors contribute their kind and path or parameter.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error())}
	if kind := serr.KindOf(err); kind != serr.Unknown {
		fields = append(fields, F("error_kind", kind.String()))
	}
	var fileErr *serr.FileError
	if serr.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *serr.ConfigError
	if serr.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return l.With(fields...)
}

// SetLevel changes the minimum level by name
func (l *Logger) SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.entry.Logger.SetLevel(lvl)
	}
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Configure replaces the global logger and closes the previous logger's file.
// When the new log file cannot be opened the previous logger stays in place.
func Configure(opts ...Option) error {
	l, err := newLogger(opts...)
	if err != nil {
		return err
	}
	mu.Lock()
	old := logger
	logger = l
	mu.Unlock()
	if old != nil && old != l {
		old.Close()
	}
	return nil
}

func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetDebug toggles debug output on the global logger
func SetDebug(debug bool) {
	if debug {
		current().SetLevel("debug")
		return
	}
	current().SetLevel("info")
}

// Close releases the global logger's file, if any
func Close() error {
	return current().Close()
}

// LogWithFields returns the global logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return current().With(fields...)
}

// LogWithError returns the global logger describing err
func LogWithError(err error) *Logger {
	return current().WithError(err)
}

// LogError logs err at error level with msg
func LogError(err error, msg string) {
	current().WithError(err).Error(msg)
}

func Debug(args ...interface{})                 { current().Debug(args...) }
func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }
func Info(args ...interface{})                  { current().Info(args...) }
func Infof(format string, args ...interface{})  { current().Infof(format, args...) }
func Warn(args ...interface{})                  { current().Warn(args...) }
func Warnf(format string, args ...interface{})  { current().Warnf(format, args...) }
func Error(args ...interface{})                 { current().Error(args...) }
func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }
