// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package prompt asks the user for the values nixbox cannot derive.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/debug"
)

// Asker asks a single question and returns the trimmed answer.
type Asker interface {
	Ask(question string) (string, error)
}

// New returns a survey prompt when in is a terminal and a plain line reader
// otherwise, so answers can be piped in.
func New(in io.Reader, out io.Writer) Asker {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return surveyAsker{}
	}
	debug.Log("prompt: stdin is not a terminal, reading answers line by line")
	return &LineAsker{in: bufio.NewReader(in), out: out}
}

type surveyAsker struct{}

func (surveyAsker) Ask(question string) (string, error) {
	answer := ""
	prompt := &survey.Input{Message: strings.TrimSuffix(strings.TrimSpace(question), ":")}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", errors.WithStack(err)
	}
	return strings.TrimSpace(answer), nil
}

// LineAsker writes the question to out and reads one line from in.
type LineAsker struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{in: bufio.NewReader(in), out: out}
}

func (l *LineAsker) Ask(question string) (string, error) {
	fmt.Fprint(l.out, question)
	line, err := l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", usererr.New("No answer given to %q", strings.TrimSpace(question))
		}
		return "", errors.WithStack(err)
	}
	return strings.TrimSpace(line), nil
}

// Func adapts a function to Asker.
type Func func(question string) (string, error)

func (f Func) Ask(question string) (string, error) { return f(question) }
