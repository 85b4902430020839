package notice

import "log/slog"

// Notifier surfaces transient, user-visible notices (the toast analogue).
// Notices never make the application fatal.
type Notifier interface {
	Notify(level Level, msg string)
}

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Log struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) *Log {
	if log == nil {
		log = slog.Default()
	}
	return &Log{log: log}
}

func (l *Log) Notify(level Level, msg string) {
	switch level {
	case LevelError:
		l.log.Error(msg, slog.String("notice", string(level)))
	default:
		l.log.Info(msg, slog.String("notice", string(level)))
	}
}
