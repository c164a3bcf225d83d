package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. Packages that are not handed a
// logger explicitly write through it.
var Log = New("capacitajun", "info")

// New builds a JSON logrus logger tagged with the service name.
func New(service, level string) *logrus.Entry {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	l.SetOutput(os.Stdout)
	l.SetLevel(parseLevel(level))

	return l.WithField("service", service)
}

// Init replaces Log; called once from main after the config is read.
func Init(service, level string) *logrus.Entry {
	Log = New(service, level)
	logrus.SetLevel(parseLevel(level))
	return Log
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithRequestID scopes an entry to a request.
func WithRequestID(requestID string) *logrus.Entry {
	return Log.WithField("request_id", requestID)
}

// WithUserID scopes an entry to a user.
func WithUserID(userID string) *logrus.Entry {
	return Log.WithField("user_id", userID)
}
