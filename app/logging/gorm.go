package logging

import (
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct {
	log   zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.WithLevel(w.level).Msgf(format, args...)
}

// Gorm returns a gorm logger that writes through log. Every statement is
// traced when log is at debug level; otherwise only slow queries and
// errors are emitted, as warnings.
func Gorm(log zerolog.Logger) gormlogger.Interface {
	w := gormWriter{
		log:   log.With().Str("component", "gorm").Logger(),
		level: zerolog.WarnLevel,
	}
	level := gormlogger.Warn
	if log.GetLevel() <= zerolog.DebugLevel {
		w.level = zerolog.DebugLevel
		level = gormlogger.Info
	}

	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
