// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger configures zerolog for the notes server and the notes CLI.
//
// Request-scoped loggers travel in the context: HTTP middleware and gRPC
// interceptors attach a child logger carrying the trace id, and handlers,
// services and stores read it back with FromContext or FromRequest.
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

// Logger embeds zerolog.Logger so the full event API is available.
type Logger struct {
	zerolog.Logger
}

func useFuncNameAsCaller() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// NewLogger returns the server logger: JSON lines on stdout tagged with
// role, a timestamp and the calling function. The global level is reset to
// debug; call SetLevel afterwards to apply the configured level.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	useFuncNameAsCaller()

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewClientLogger writes plain console lines to w. The CLI passes stderr so
// diagnostics stay out of the command output.
func NewClientLogger(role string, w io.Writer) *Logger {
	useFuncNameAsCaller()

	l := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// SetLevel sets the global minimum level by name.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver's fields into a new logger that can be
// extended with UpdateContext without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached with zerolog's WithContext, or
// zerolog's default logger when ctx carries none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
