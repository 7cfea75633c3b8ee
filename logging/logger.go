package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type prefixedLogger struct {
	target Logger
	prefix string
}

func (p prefixedLogger) Printf(message string, args ...interface{}) {
	p.target.Printf("%s%s", p.prefix, fmt.Sprintf(message, args...))
}

// WithPrefix returns a Logger that adds a fixed prefix to every message.
func WithPrefix(target Logger, prefix string) Logger {
	if target == nil {
		return NullLogger()
	}
	return prefixedLogger{target: target, prefix: prefix}
}

type multiLogger []Logger

func (m multiLogger) Printf(message string, args ...interface{}) {
	for _, l := range m {
		l.Printf(message, args...)
	}
}

// Multi returns a Logger that sends every message to all of the non-nil loggers given.
func Multi(loggers ...Logger) Logger {
	var ret multiLogger
	for _, l := range loggers {
		if l != nil {
			ret = append(ret, l)
		}
	}
	if len(ret) == 1 {
		return ret[0]
	}
	return ret
}

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger accumulates messages so they can be shown later, for instance only if a
// test fails.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}

type debugLogger struct {
	target logrus.FieldLogger
}

func (d debugLogger) Printf(message string, args ...interface{}) {
	d.target.Debugf(message, args...)
}

// DebugLogger returns a Logger that writes every message at debug level, so the target's level
// decides whether it appears.
func DebugLogger(target logrus.FieldLogger) Logger {
	if target == nil {
		return NullLogger()
	}
	return debugLogger{target: target}
}

// NewConsoleLogger creates the process-level logger. With verbose set, debug messages are
// written too.
func NewConsoleLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
