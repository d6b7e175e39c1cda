package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mdobak/go-xerrors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/afero"
)

// SecurityLogEntry defines the structure of a security log entry.
type SecurityLogEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Severity    string    `json:"severity"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Details     string    `json:"details,omitempty"`
	Source      string    `json:"source,omitempty"`
	OffenderID  string    `json:"offender_id,omitempty"`
}

const (
	LevelTrace    = slog.Level(-8)
	LevelFatal    = slog.Level(12)
	LevelSecurity = slog.Level(16)

	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"

	CategoryAuthentication  = "Authentication"
	CategoryPolicyViolation = "Policy Violation"
	CategorySystemIntegrity = "System Integrity"

	SourceAuthentication = "authentication"
	SourceGenerator      = "generator"
	SourceStrength       = "strength"
	SourceSystem         = "system"
)

type Logger struct {
	logger *slog.Logger
}

type stackFrame struct {
	Func   string `json:"func"`
	Source string `json:"source"`
	Line   int    `json:"line"`
}

// Returns a debug logger that writes to stdout only
func DefaultLogger() *Logger {
	return NewLogger(slog.LevelDebug, nil)
}

// Creates a logger writing JSON records to the log file. When the
// level is Debug, human readable records are also written to stdout.
// A nil log file discards the JSON records.
func NewLogger(level slog.Level, logFile afero.File) *Logger {
	var writer io.Writer = io.Discard
	if logFile != nil {
		writer = logFile
	}
	return newLogger(level, writer, os.Stdout)
}

func newLogger(level slog.Level, logWriter, stdout io.Writer) *Logger {

	var logger *slog.Logger

	logfileHandler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})

	if level <= slog.LevelDebug {

		textHandler := slog.NewTextHandler(stdout, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr,
		})

		logger = slog.New(
			slogmulti.Fanout(logfileHandler, textHandler),
		)

	} else {

		logger = slog.New(logfileHandler)
	}

	return &Logger{
		logger: logger,
	}
}

// Trace
func (l *Logger) Trace(message string, args ...any) {
	l.logger.Log(context.Background(), LevelTrace, message, args...)
}

// Debug
func (l *Logger) Debug(message string, args ...any) {
	l.logger.Debug(message, args...)
}

func (l *Logger) Debugf(message string, args ...any) {
	l.logger.Debug(fmt.Sprintf(message, args...))
}

// Info
func (l *Logger) Info(message string, args ...any) {
	l.logger.Info(message, args...)
}

func (l *Logger) Infof(message string, args ...any) {
	l.logger.Info(fmt.Sprintf(message, args...))
}

// Warn
func (l *Logger) Warn(message string, args ...any) {
	l.logger.Warn(message, args...)
}

func (l *Logger) Warnf(message string, args ...any) {
	l.logger.Warn(fmt.Sprintf(message, args...))
}

// Error
func (l *Logger) Error(err error, args ...any) {
	if l == nil || l.logger == nil {
		// Error occurred before the logger was
		// initialized
		slog.Error(err.Error(), args...)
		return
	}
	xerr := xerrors.New(err)
	l.logger.Error(err.Error(), append([]any{slog.Any("error", xerr)}, args...)...)
}

func (l *Logger) Errorf(message string, args ...any) {
	l.logger.Error(fmt.Sprintf(message, args...))
}

func (l *Logger) MaybeError(err error, args ...any) {
	l.logger.Warn(err.Error(), args...)
}

// Fatal
func (l *Logger) Fatal(message string, args ...any) {
	l.logger.Log(context.Background(), LevelFatal, message, args...)
	os.Exit(-1)
}

func (l *Logger) Fatalf(message string, args ...any) {
	l.Fatal(fmt.Sprintf(message, args...))
}

func (l *Logger) FatalError(err error) {
	l.Error(err)
	os.Exit(-1)
}

// Logs a security issue with standardized fields to faciliate
// processing security issues by external systems.
func (l *Logger) Security(issue SecurityLogEntry) {
	if issue.Timestamp.IsZero() {
		issue.Timestamp = time.Now()
	}
	l.logger.LogAttrs(
		context.TODO(),
		LevelSecurity,
		"security_log",
		slog.Time("timestamp", issue.Timestamp),
		slog.String("severity", issue.Severity),
		slog.String("category", issue.Category),
		slog.String("description", issue.Description),
		slog.String("details", issue.Details),
		slog.String("source", issue.Source),
		slog.String("offender_id", issue.OffenderID),
	)
}

// Renders custom level names and expands errors into a message
// and stack trace group
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			switch {
			case level < slog.LevelDebug:
				a.Value = slog.StringValue("TRACE")
			case level >= LevelSecurity:
				a.Value = slog.StringValue("SECURITY")
			case level >= LevelFatal:
				a.Value = slog.StringValue("FATAL")
			}
		}
		return a
	}
	if a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			a.Value = formatError(err)
		}
	}
	return a
}

func formatError(err error) slog.Value {
	attrs := []slog.Attr{slog.String("msg", err.Error())}
	if frames := marshalStack(err); frames != nil {
		attrs = append(attrs, slog.Any("trace", frames))
	}
	return slog.GroupValue(attrs...)
}

func marshalStack(err error) []stackFrame {
	trace := xerrors.StackTrace(err)
	if len(trace) == 0 {
		return nil
	}
	frames := trace.Frames()
	stack := make([]stackFrame, len(frames))
	for i, frame := range frames {
		stack[i] = stackFrame{
			Source: filepath.Join(
				filepath.Base(filepath.Dir(frame.File)),
				filepath.Base(frame.File)),
			Func: filepath.Base(frame.Function),
			Line: frame.Line,
		}
	}
	return stack
}
