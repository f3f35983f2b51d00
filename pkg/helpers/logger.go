package helpers

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// serviceHook stamps every entry with the process name and environment.
type serviceHook struct {
	service string
	env     string
}

func (h serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(e *logrus.Entry) error {
	if _, ok := e.Data["service"]; !ok {
		e.Data["service"] = h.service
	}
	e.Data["env"] = h.env
	return nil
}

// NewLogger returns the process logger: text at debug level in development,
// JSON at info level elsewhere.
func NewLogger(service, env string) *logrus.Logger {
	return newLogger(os.Stdout, service, env)
}

func newLogger(w io.Writer, service, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.AddHook(serviceHook{service: service, env: env})
	logger.Debug("logger initialized")
	return logger
}
