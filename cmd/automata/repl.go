package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"automata/internal/machine"
	"automata/internal/regex"
)

const (
	cmdQuit       = ":q"
	cmdNewPattern = ":p"
)

// ReplCmd represents the repl command
type ReplCmd struct{}

func (cmd *ReplCmd) Run(ctx *Context) error {
	return newSession(ctx).patterns()
}

// session reads one line per prompt from the context input. An empty line
// is the empty string, not a request to stop.
type session struct {
	ctx *Context
	in  *bufio.Scanner
}

func newSession(ctx *Context) *session {
	return &session{ctx: ctx, in: bufio.NewScanner(ctx.In)}
}

func (s *session) prompt(p string) (string, bool) {
	fmt.Fprint(s.ctx.Out, p)
	if !s.in.Scan() {
		fmt.Fprintln(s.ctx.Out)
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *session) patterns() error {
	fmt.Fprintf(s.ctx.Out, "Enter a pattern over 0 1 ( ) * + ? . | ; %s quits.\n", cmdQuit)
	for {
		line, ok := s.prompt("pattern> ")
		if !ok || line == cmdQuit {
			break
		}
		re, err := regex.Compile(line)
		if err != nil {
			color.New(color.FgRed).Fprintf(s.ctx.Out, "invalid pattern: %v\n", err)
			continue
		}
		fmt.Fprintf(s.ctx.Out, "Enter strings; %s for a new pattern.\n", cmdNewPattern)
		quit, err := s.inputs(re.String(), re)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(s.ctx.Out, "Goodbye!")
	return nil
}

// inputs tests every line against m until the input ends or the user asks
// for a new pattern. quit is true unless a new pattern was requested.
func (s *session) inputs(name string, m machine.Acceptor) (quit bool, err error) {
	for {
		line, ok := s.prompt("string> ")
		if !ok || line == cmdQuit {
			return true, s.in.Err()
		}
		if line == cmdNewPattern {
			return false, nil
		}
		printVerdict(s.ctx, line, name, m.Accepts(line))
	}
}
