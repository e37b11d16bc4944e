// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package debug

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/envir"
)

var enabled bool

func init() {
	enabled = envir.IsNixboxDebugEnabled()
	if enabled {
		setupLogging(os.Stderr)
	}
}

func IsEnabled() bool { return enabled }

func Enable() {
	enabled = true
	setupLogging(os.Stderr)
	_ = log.Output(2, "Debug mode enabled.")
}

func setupLogging(w io.Writer) {
	log.SetPrefix("[DEBUG] ")
	log.SetFlags(log.Llongfile | log.Ldate | log.Ltime)
	log.SetOutput(w)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func Log(format string, v ...any) {
	if !enabled {
		return
	}
	_ = log.Output(2, fmt.Sprintf(format, v...))
}

func Recover() {
	r := recover()
	if r == nil {
		return
	}

	sentry.CurrentHub().Recover(r)
	if enabled {
		log.Println("Allowing panic because debug mode is enabled.")
		panic(r)
	}
	fmt.Fprintln(os.Stderr, "Error:", r)
}

// EarliestStackTrace returns the innermost error in err's chain that carries a
// stack trace, or nil if none do.
func EarliestStackTrace(err error) error {
	type pkgErrorsStackTracer interface{ StackTrace() errors.StackTrace }
	type runtimeStackTracer interface{ StackTrace() []runtime.Frame }

	var stErr error
	for err != nil {
		//nolint:errorlint
		switch err.(type) {
		case runtimeStackTracer, pkgErrorsStackTracer:
			stErr = err
		}
		err = errors.Unwrap(err)
	}
	return stErr
}
