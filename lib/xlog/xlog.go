package xlog

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const coreKeyIgnored = ""

type xLogger struct {
	logger  *zap.Logger
	lvl     zapcore.Level
	encoder LogEncoderType
	ws      zapcore.WriteSyncer
	name    string
}

func (l *xLogger) Sync() error {
	var err error
	if l.logger != nil {
		err = multierr.Append(err, l.logger.Sync())
	}
	return err
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.String("error", fmt.Sprintf("%+v", err)))
	}
	l.logger.Error(msg, fields...)
}

func (l *xLogger) Logf(lvl LogLevel, format string, args ...any) {
	if ce := l.logger.Check(lvl.zapLevel(), fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

func (l *xLogger) build() {
	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		TimeKey:       "ts",
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	core := zapcore.NewCore(getEncoderByType(l.encoder)(config), l.ws, l.lvl)
	l.logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	if l.name != "" {
		l.logger = l.logger.Named(l.name)
	}
}

type XLoggerOpt func(*xLogger)

func WithXLogLevel(lvl LogLevel) XLoggerOpt {
	return func(l *xLogger) {
		l.lvl = lvl.zapLevel()
	}
}

func WithXLogEncoder(typ LogEncoderType) XLoggerOpt {
	return func(l *xLogger) {
		l.encoder = typ
	}
}

func WithXLogWriter(ws zapcore.WriteSyncer) XLoggerOpt {
	return func(l *xLogger) {
		l.ws = ws
	}
}

func WithXLogName(name string) XLoggerOpt {
	return func(l *xLogger) {
		l.name = name
	}
}

func NewXLogger(opts ...XLoggerOpt) XLogger {
	l := &xLogger{
		lvl:     zapcore.InfoLevel,
		encoder: JSON,
	}
	for _, o := range opts {
		if o != nil {
			o(l)
		}
	}
	if l.ws == nil {
		l.ws = stdOutWriteSyncer()
	}
	l.build()
	return l
}
