package xlog

import "fmt"

// AntsXLogger adapts XLogger to the ants pool logger interface, the
// pool chatter lands at debug level.
type AntsXLogger struct {
	logger XLogger
}

func (l *AntsXLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func NewAntsXLogger(logger XLogger) *AntsXLogger {
	return &AntsXLogger{logger: logger}
}
