package logger

import (
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

// Logger writes to the shared logrus instance on a fixed level
type Logger struct {
	level logrus.Level
}

var (
	base  = logrus.New()
	Info  = &Logger{level: logrus.InfoLevel}
	Warn  = &Logger{level: logrus.WarnLevel}
	Error = &Logger{level: logrus.ErrorLevel}
	Debug = &Logger{level: logrus.DebugLevel}
	Trace = &Logger{level: logrus.TraceLevel}
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	base.Warnf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func (s LogLevel) logrusLevel() logrus.Level {
	switch s {
	case ERROR:
		return logrus.ErrorLevel
	case WARN:
		return logrus.WarnLevel
	case DEBUG:
		return logrus.DebugLevel
	case TRACE:
		return logrus.TraceLevel
	}
	return logrus.InfoLevel
}

func (s *Logger) Printf(format string, args ...interface{}) {
	base.Logf(s.level, format, args...)
}

func (s *Logger) Print(args ...interface{}) {
	base.Log(s.level, args...)
}

func (s *Logger) Panic(args ...interface{}) {
	base.Panic(args...)
}

func (s *Logger) Enabled() bool {
	return base.IsLevelEnabled(s.level)
}

func init() {
	base.SetOutput(io.Discard)
}

func Initialize(logLevel LogLevel) {
	InitializeWithOutput(logLevel, os.Stderr)
}

func InitializeWithOutput(logLevel LogLevel, out io.Writer) {
	base.SetOutput(out)
	base.SetLevel(logLevel.logrusLevel())
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	base.Infof("Initialize loggers: '%s'", logLevel.String())
}
