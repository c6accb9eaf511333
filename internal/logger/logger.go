// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// gamegenius client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given
// role label. Every entry carries "role", a timestamp and the calling
// function name in "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewClientLogger constructs a *Logger appending to the file at path, so that
// log output does not interfere with the terminal UI. Output is discarded
// when path is empty or the file cannot be opened. An unknown or empty level
// selects Info.
//
// The returned function closes the log file and is safe to call when no file
// was opened.
func NewClientLogger(role, path, level string) (*Logger, func() error) {
	if path == "" {
		return newLogger(io.Discard, role, ParseLevel(level)), func() error { return nil }
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, role, ParseLevel(level)), func() error { return nil }
	}

	return newLogger(logFile, role, ParseLevel(level)), logFile.Close
}

func newLogger(out io.Writer, role string, level zerolog.Level) *Logger {
	logger := zerolog.New(out).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a zerolog level name, defaulting to Info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying l, retrievable with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
