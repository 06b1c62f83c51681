package leimysql

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger reports executed queries through a zerolog logger.
// Successful queries log at debug level, failures at error level.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a query logger writing structured events to w.
//
// Example:
//
//	db := leimysql.NewDB(sqlDB,
//	    leimysql.WithDebug(true),
//	    leimysql.WithLogger(leimysql.NewZerologLogger(os.Stderr)),
//	)
func NewZerologLogger(w io.Writer) ZerologLogger {
	return ZerologLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// NewZerologLoggerWith wraps an existing zerolog logger, so query events
// inherit the caller's context fields.
func NewZerologLoggerWith(logger zerolog.Logger) ZerologLogger {
	return ZerologLogger{logger: logger}
}

// Log implements the Logger interface.
func (l ZerologLogger) Log(query string, args []any, duration time.Duration, err error) {
	event := l.logger.Debug()
	if err != nil {
		event = l.logger.Error().Err(err)
	}
	event.
		Str("query", query).
		Interface("args", args).
		Dur("duration", duration).
		Msg("query executed")
}
