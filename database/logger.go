/*
 * Copyright 2026 1diego321.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalLogger   Logger
	globalLoggerMu sync.RWMutex
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "DEBUG"
	}
}

// Logger is the logging contract used by the database package. Fields are
// alternating key/value pairs.
type Logger interface {
	SetLevel(LogLevel)
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// InitLogger installs the global logger used when none is set explicitly.
// The first non-nil logger wins.
func InitLogger(log Logger) {
	if log == nil {
		return
	}
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		globalLogger = log
	}
}

// GetLogger returns the global logger, installing a zerolog-backed default
// on first use.
func GetLogger() Logger {
	globalLoggerMu.RLock()
	l := globalLogger
	globalLoggerMu.RUnlock()
	if l != nil {
		return l
	}

	dl := NewDefaultLogger()
	globalLoggerMu.Lock()
	if globalLogger == nil {
		globalLogger = dl
	}
	l = globalLogger
	globalLoggerMu.Unlock()
	return l
}

// DefaultLogger adapts zerolog to the Logger interface.
type DefaultLogger struct {
	logger zerolog.Logger
}

// NewDefaultLogger returns a console-friendly zerolog logger at info level.
func NewDefaultLogger() *DefaultLogger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Str("component", "database").Logger()
	return &DefaultLogger{logger: zl}
}

func (l *DefaultLogger) SetLevel(level LogLevel) {
	switch level {
	case LogLevelDebug:
		l.logger = l.logger.Level(zerolog.DebugLevel)
	case LogLevelInfo:
		l.logger = l.logger.Level(zerolog.InfoLevel)
	case LogLevelWarn:
		l.logger = l.logger.Level(zerolog.WarnLevel)
	case LogLevelError:
		l.logger = l.logger.Level(zerolog.ErrorLevel)
	}
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.emit(l.logger.Debug(), msg, fields...)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.emit(l.logger.Info(), msg, fields...)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.emit(l.logger.Warn(), msg, fields...)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.emit(l.logger.Error(), msg, fields...)
}

func (l *DefaultLogger) emit(event *zerolog.Event, msg string, fields ...interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
