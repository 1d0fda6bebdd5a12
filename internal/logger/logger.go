// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the delivery board server and client.
//
// Handlers and services never build loggers of their own: the server root
// logger is created once in main, the HTTP layer attaches a trace-scoped
// child to each request, and deeper code fetches it with FromContext or
// FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// callerFieldName replaces zerolog's "caller" field, which holds the
// function name instead of file:line.
const callerFieldName = "func"

func init() {
	zerolog.CallerFieldName = callerFieldName
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// New returns a JSON logger writing to w. Every entry carries the role,
// a timestamp and, when withCaller is set, the calling function.
func New(role string, w io.Writer, level zerolog.Level, withCaller bool) *Logger {
	ctx := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp()
	if withCaller {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// NewLogger is the server logger: JSON on stdout, debug level, with caller.
// Use [Logger.WithLevel] to raise the level from configuration.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return New(role, os.Stdout, zerolog.DebugLevel, true)
}

// NewClientLogger is the command-line client logger. Command results go to
// stdout, so log entries go to w (usually stderr) and only warnings and
// errors are emitted.
func NewClientLogger(role string, w io.Writer) *Logger {
	return New(role, w, zerolog.WarnLevel, false)
}

// WithLevel returns a copy that only emits entries at level or above. An
// unknown level returns the receiver unchanged together with an error.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return &Logger{l.Level(lvl)}, nil
}

// Nop discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be given extra fields without
// touching the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's disabled
// default logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
