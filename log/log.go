package log

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.uber.org/atomic"
)

var Root = &logrus.Logger{
	Out:   os.Stderr,
	Level: logrus.TraceLevel,
	Formatter: &prefixed.TextFormatter{
		DisableColors: func() bool {
			term, ok := os.LookupEnv("TERM")
			return term == "" || !ok
		}(),
		ForceFormatting: true,
		TimestampFormat: "2006-01-02 15:04:05",
	},
	Hooks:    make(logrus.LevelHooks),
	ExitFunc: os.Exit,
}

// ChildLogger logs through a parent with a fixed prefix field. Debug
// output can be switched per child while the connection runs.
type ChildLogger struct {
	parent *logrus.Logger
	prefix string
	debug  *atomic.Bool
}

func NewChildLogger(parent *logrus.Logger, prefix string, debug bool) *ChildLogger {
	return &ChildLogger{
		parent: parent,
		prefix: prefix,
		debug:  atomic.NewBool(debug),
	}
}

func (l *ChildLogger) level() logrus.Level {
	if l.debug.Load() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func (l *ChildLogger) shouldOutput(level logrus.Level) bool {
	return l.level() >= level
}

func (l *ChildLogger) entry() *logrus.Entry {
	return l.parent.WithField("prefix", l.prefix)
}

// WithField returns an entry carrying the child's prefix plus key.
func (l *ChildLogger) WithField(key string, value interface{}) *logrus.Entry {
	return l.entry().WithField(key, value)
}

func (l *ChildLogger) SetDebug(debug bool) {
	l.debug.Store(debug)
}

func (l *ChildLogger) IsDebug() bool {
	return l.debug.Load()
}

func (l *ChildLogger) Debug(args ...interface{}) {
	if l.shouldOutput(logrus.DebugLevel) {
		l.entry().Debug(args...)
	}
}

func (l *ChildLogger) Info(args ...interface{}) {
	if l.shouldOutput(logrus.InfoLevel) {
		l.entry().Info(args...)
	}
}

func (l *ChildLogger) Warning(args ...interface{}) {
	l.entry().Warning(args...)
}

func (l *ChildLogger) Error(args ...interface{}) {
	l.entry().Error(args...)
}

func (l *ChildLogger) Debugf(format string, args ...interface{}) {
	if l.shouldOutput(logrus.DebugLevel) {
		l.entry().Debugf(format, args...)
	}
}

func (l *ChildLogger) Infof(format string, args ...interface{}) {
	if l.shouldOutput(logrus.InfoLevel) {
		l.entry().Infof(format, args...)
	}
}

func (l *ChildLogger) Warningf(format string, args ...interface{}) {
	l.entry().Warningf(format, args...)
}

func (l *ChildLogger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

func (l *ChildLogger) Fatalf(format string, args ...interface{}) {
	l.entry().Fatalf(format, args...)
}

// Children are the loggers of one camera connection.
type Children struct {
	Stream  *ChildLogger
	Session *ChildLogger
	Data    *ChildLogger
	Relay   *ChildLogger
}

func PrepareChildren(parent *logrus.Logger, stream, session, data, relay bool) *Children {
	return &Children{
		Stream:  NewChildLogger(parent, "stream", stream),
		Session: NewChildLogger(parent, "session", session),
		Data:    NewChildLogger(parent, "data", data),
		Relay:   NewChildLogger(parent, "relay", relay),
	}
}

func HTTPLogHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			Root.WithField("prefix", "http").Infof("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		}()
		next.ServeHTTP(w, r)
	})
}
