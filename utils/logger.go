package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// Set output untuk InfoLogger ke stdout
	InfoLogger.SetOutput(os.Stdout)
	// Set output untuk ErrorLogger ke stderr
	ErrorLogger.SetOutput(os.Stderr)

	var formatter logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		formatter = &logrus.JSONFormatter{}
	}
	InfoLogger.SetFormatter(formatter)
	ErrorLogger.SetFormatter(formatter)

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// ensureLoggers dipakai oleh kode yang bisa jalan sebelum InitLogger (mis. di test).
func ensureLoggers() {
	if InfoLogger == nil || ErrorLogger == nil {
		InitLogger()
	}
}

// Info returns an entry on InfoLogger carrying fields.
func Info(fields logrus.Fields) *logrus.Entry {
	ensureLoggers()
	return InfoLogger.WithFields(fields)
}

// Error returns an entry on ErrorLogger carrying fields.
func Error(fields logrus.Fields) *logrus.Entry {
	ensureLoggers()
	return ErrorLogger.WithFields(fields)
}
