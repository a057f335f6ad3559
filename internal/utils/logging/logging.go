package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Entry
)

type Fields = logrus.Fields

func SetLevel(l logrus.Level) {
	logger.Logger.SetLevel(l)
}

// SetFormat switches between the "text" and "json" formatters.
func SetFormat(f string) {
	switch f {
	case "json":
		logger.Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func SetOutput(w io.Writer) {
	logger.Logger.SetOutput(w)
}

func init() {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
}

func WithError(e error) *logrus.Entry {
	return logger.WithError(e)
}

func WithField(k string, v interface{}) *logrus.Entry {
	return logger.WithField(k, v)
}

func Entry() *logrus.Entry {
	return logger
}

func Error(args ...interface{}) {
	logger.Error(args...)
}
