// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pixellog provides the leveled logger each core package binds to a
// package-level var, in the convention the teacher's own subsystems
// (mempool, mining, netsync) follow: a disabled sink by default so a bare
// library import never writes anything, swapped for a real logger via
// UseLogger.
package pixellog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Level describes the severity of a log message.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// String returns the shorthand three-letter tag for the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelCritical:
		return "CRT"
	default:
		return "OFF"
	}
}

// LevelFromString returns a level based on the input string s. If the input
// can't be interpreted as a valid log level, LevelInfo and false is
// returned.
func LevelFromString(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "crt":
		return LevelCritical, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

func (l Level) toSlog() slog.Level {
	switch l {
	case LevelTrace:
		return slog.Level(-5)
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return slog.Level(9)
	case LevelOff:
		return slog.Level(10)
	default:
		return slog.LevelInfo
	}
}

// Logger is the leveled logging surface every subsystem in this module logs
// through.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Criticalf(format string, args ...any)

	SubSystem(tag string) Logger
	SetLevel(level Level)
	Level() Level
}

// Disabled is the default logger bound by every subsystem until UseLogger
// is called; it discards everything.
var Disabled Logger = &noopLogger{}

type noopLogger struct{}

func (*noopLogger) Tracef(string, ...any)    {}
func (*noopLogger) Debugf(string, ...any)    {}
func (*noopLogger) Infof(string, ...any)     {}
func (*noopLogger) Warnf(string, ...any)     {}
func (*noopLogger) Errorf(string, ...any)    {}
func (*noopLogger) Criticalf(string, ...any) {}
func (*noopLogger) SubSystem(string) Logger  { return Disabled }
func (*noopLogger) SetLevel(Level)           {}
func (*noopLogger) Level() Level             { return LevelOff }

// slogLogger adapts the standard library's structured logger to the Logger
// interface, mirroring the teacher's flog-over-slog adapter.
type slogLogger struct {
	base  *slog.Logger
	tag   string
	level *Level
}

// New returns a Logger writing through the provided slog.Handler.
func New(h slog.Handler) Logger {
	lvl := LevelInfo
	return &slogLogger{base: slog.New(h), level: &lvl}
}

func (l *slogLogger) log(level Level, msg string) {
	if level < *l.level {
		return
	}
	if l.tag != "" {
		msg = fmt.Sprintf("%s: %s", l.tag, msg)
	}
	l.base.Log(context.Background(), level.toSlog(), msg)
}

func (l *slogLogger) Tracef(format string, args ...any)    { l.log(LevelTrace, fmt.Sprintf(format, args...)) }
func (l *slogLogger) Debugf(format string, args ...any)    { l.log(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *slogLogger) Infof(format string, args ...any)     { l.log(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *slogLogger) Warnf(format string, args ...any)     { l.log(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *slogLogger) Errorf(format string, args ...any)    { l.log(LevelError, fmt.Sprintf(format, args...)) }
func (l *slogLogger) Criticalf(format string, args ...any) { l.log(LevelCritical, fmt.Sprintf(format, args...)) }

func (l *slogLogger) SubSystem(tag string) Logger {
	return &slogLogger{base: l.base, tag: tag, level: l.level}
}

func (l *slogLogger) SetLevel(level Level) { *l.level = level }
func (l *slogLogger) Level() Level         { return *l.level }
