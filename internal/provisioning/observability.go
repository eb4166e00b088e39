package provisioning

import (
	"github.com/sirupsen/logrus"
)

// Observer is the logging surface phases report through. Severity maps to
// what the operator sees on the console: Infof for progress, Warnf for
// recoverable oddities, Errorf for failures.
type Observer interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})

	// WithField returns an Observer that tags every line with key=value.
	WithField(key, value string) Observer
}

// logObserver implements Observer on top of logrus.
type logObserver struct {
	entry *logrus.Entry
}

// NewObserver creates a console observer with timestamped, severity-tagged
// output.
func NewObserver() Observer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return &logObserver{entry: logrus.NewEntry(logger)}
}

// NewObserverWithEntry wraps an existing logrus entry, mainly for tests.
func NewObserverWithEntry(entry *logrus.Entry) Observer {
	return &logObserver{entry: entry}
}

func (o *logObserver) Infof(format string, v ...interface{}) {
	o.entry.Infof(format, v...)
}

func (o *logObserver) Warnf(format string, v ...interface{}) {
	o.entry.Warnf(format, v...)
}

func (o *logObserver) Errorf(format string, v ...interface{}) {
	o.entry.Errorf(format, v...)
}

func (o *logObserver) WithField(key, value string) Observer {
	return &logObserver{entry: o.entry.WithField(key, value)}
}
