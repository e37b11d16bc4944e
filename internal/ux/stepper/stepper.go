// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package stepper

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"go.jetify.com/nixbox/internal/envir"
)

// Stepper shows a spinner while a step runs. When w is not a terminal it
// degrades to printing only the final message, so logs and tests stay
// readable.
type Stepper struct {
	w       io.Writer
	spinner *spinner.Spinner
}

func Start(w io.Writer, format string, a ...any) *Stepper {
	s := &Stepper{w: w}
	if !isTerminal(w) {
		return s
	}
	s.spinner = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	if err := s.spinner.Color("magenta"); err != nil {
		panic(err)
	}
	s.spinner.Suffix = " " + fmt.Sprintf(format, a...)
	s.spinner.Start()
	return s
}

func (s *Stepper) Fail(format string, a ...any) {
	s.finish(color.RedString("✘"), format, a...)
}

func (s *Stepper) Success(format string, a ...any) {
	s.finish(color.GreenString("✓"), format, a...)
}

func (s *Stepper) finish(mark, format string, a ...any) {
	msg := fmt.Sprintf("%s %s\n", mark, fmt.Sprintf(format, a...))
	if s.spinner == nil {
		fmt.Fprint(s.w, msg)
		return
	}
	s.spinner.FinalMSG = msg
	s.spinner.Stop()
}

func isTerminal(w io.Writer) bool {
	if envir.IsCI() {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
