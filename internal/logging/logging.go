package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points logrus at a rotated log file. A TUI app owns the terminal, so
// nothing may be written to stdout; with no file name logs are discarded.
func Setup(logFileName, level string) {
	logrus.SetLevel(GetLevel(level))

	if logFileName == "" {
		logrus.SetOutput(io.Discard)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename: logFileName,
		MaxSize:  10, // megabytes
		Compress: true,
	})
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
