// Package logging provides the process-wide structured logger for the EZ Help
// builder service.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	once   sync.Once
)

// Init builds the global logger. Production uses the JSON encoder with ISO8601
// timestamps; every other environment gets the colored console encoder.
// Only the first call has an effect.
func Init(production bool) {
	once.Do(func() {
		var cfg zap.Config
		if production {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.TimeKey = "ts"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		Set(l)
	})
}

// Set replaces the global logger. Tests use it to install zaptest loggers.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	sugar = l.Sugar()
	mu.Unlock()
}

// L returns the global structured logger.
func L() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Init(false)
		mu.RLock()
		l = logger
		mu.RUnlock()
	}
	return l
}

// S returns the global sugared logger (printf-style)
func S() *zap.SugaredLogger {
	L()
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Sync flushes any buffered log entries. Call before exit.
func Sync() {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		_ = l.Sync()
	}
}

// WithContext returns a logger with additional structured fields
func WithContext(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}
