// Package logging adapts the zerolog logger to third-party logging interfaces.
package logging

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// LeveledAdapter exposes a zerolog logger as a retryablehttp.LeveledLogger.
type LeveledAdapter struct {
	logger *zerolog.Logger
}

var _ retryablehttp.LeveledLogger = (*LeveledAdapter)(nil)

// NewLeveledAdapter wraps logger.
func NewLeveledAdapter(logger *zerolog.Logger) *LeveledAdapter {
	return &LeveledAdapter{logger: logger}
}

func (a *LeveledAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Error(), msg, keysAndValues)
}

func (a *LeveledAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Info(), msg, keysAndValues)
}

// Debug is mapped to trace: retryablehttp logs every request at debug.
func (a *LeveledAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Trace(), msg, keysAndValues)
}

func (a *LeveledAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Warn(), msg, keysAndValues)
}

func (a *LeveledAdapter) emit(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	if ev == nil {
		return
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	ev.Msg(msg)
}
