package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"automata/internal/machine"
	"automata/internal/regex"
)

// MatchCmd represents the match command
type MatchCmd struct {
	Pattern string   `arg:"" help:"Binary pattern, e.g. (0|1)*.0.0.1.(0|1)*"`
	Inputs  []string `arg:"" optional:"" help:"Strings to test; read from stdin when omitted"`
}

func (cmd *MatchCmd) Run(ctx *Context) error {
	re, err := regex.Compile(cmd.Pattern)
	if err != nil {
		return err
	}
	if ctx.Verbose {
		color.New(color.FgCyan).Fprintf(ctx.Out, "postfix: %s, %d states\n", re.Postfix(), len(re.NFA().States))
	}
	if len(cmd.Inputs) == 0 {
		_, err := newSession(ctx).inputs(re.String(), re)
		return err
	}
	for _, in := range cmd.Inputs {
		printVerdict(ctx, in, re.String(), re.MatchString(in))
	}
	return nil
}

// PostfixCmd represents the postfix command
type PostfixCmd struct {
	Pattern string `arg:"" help:"Binary pattern"`
}

func (cmd *PostfixCmd) Run(ctx *Context) error {
	postfix, err := regex.Shunt(cmd.Pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, postfix)
	return nil
}

// DotCmd represents the dot command
type DotCmd struct {
	Pattern string `arg:"" help:"Binary pattern"`
	Output  string `short:"o" help:"Output file, - for stdout" default:"-"`
}

func (cmd *DotCmd) Run(ctx *Context) error {
	re, err := regex.Compile(cmd.Pattern)
	if err != nil {
		return err
	}
	if cmd.Output == "-" {
		return regex.ExportDOT(ctx.Out, re.NFA())
	}
	f, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", cmd.Output, err)
	}
	defer f.Close()
	if err := regex.ExportDOT(f, re.NFA()); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(ctx.Out, "DOT written to %s\n", cmd.Output)
	return nil
}

// DFACmd represents the dfa command
type DFACmd struct {
	File   string   `arg:"" type:"existingfile" help:"DFA description file"`
	Inputs []string `arg:"" optional:"" help:"Strings to test; read from stdin when omitted"`
}

func (cmd *DFACmd) Run(ctx *Context) error {
	d, err := machine.LoadFile(cmd.File)
	if err != nil {
		return err
	}
	m, err := machine.NewDFA(d)
	if err != nil {
		return err
	}
	if ctx.Verbose {
		if reach := m.Reachable(); len(reach) < len(d.States) {
			color.New(color.FgYellow).Fprintf(ctx.Out, "warning: only %s reachable from %s\n", strings.Join(reach, ", "), d.Start)
		}
	}
	return simulate(ctx, cmd.File, m, cmd.Inputs)
}

// NFACmd represents the nfa command
type NFACmd struct {
	File   string   `arg:"" type:"existingfile" help:"NFA description file"`
	Inputs []string `arg:"" optional:"" help:"Strings to test; read from stdin when omitted"`
}

func (cmd *NFACmd) Run(ctx *Context) error {
	d, err := machine.LoadFile(cmd.File)
	if err != nil {
		return err
	}
	m, err := machine.NewNFA(d)
	if err != nil {
		return err
	}
	return simulate(ctx, cmd.File, m, cmd.Inputs)
}

func simulate(ctx *Context, name string, m machine.Acceptor, inputs []string) error {
	if len(inputs) == 0 {
		_, err := newSession(ctx).inputs(name, m)
		return err
	}
	for _, in := range inputs {
		printVerdict(ctx, in, name, m.Accepts(in))
	}
	return nil
}

// CheckCmd represents the check command
type CheckCmd struct {
	Checker string   `help:"Checker to run" default:"password"`
	List    bool     `help:"List available checkers and exit"`
	Words   []string `arg:"" optional:"" help:"Words to check"`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	if cmd.List {
		for _, name := range ctx.Config.CheckerNames() {
			fmt.Fprintln(ctx.Out, name)
		}
		return nil
	}
	c, err := ctx.Config.Checker(cmd.Checker)
	if err != nil {
		return err
	}
	for _, w := range cmd.Words {
		rep := c.Check(w)
		if rep.OK() {
			color.New(color.FgGreen).Fprintf(ctx.Out, "%q is accepted by %s\n", w, cmd.Checker)
			continue
		}
		color.New(color.FgRed).Fprintf(ctx.Out, "%q is rejected by %s\n", w, cmd.Checker)
		for _, r := range rep.Failed {
			if r.Description != "" {
				fmt.Fprintf(ctx.Out, "  - %s: %s\n", r.Name, r.Description)
			} else {
				fmt.Fprintf(ctx.Out, "  - %s\n", r.Name)
			}
		}
	}
	return nil
}

func printVerdict(ctx *Context, input, against string, ok bool) {
	if ok {
		color.New(color.FgGreen).Fprintf(ctx.Out, "%q matches %s\n", input, against)
	} else {
		color.New(color.FgRed).Fprintf(ctx.Out, "%q does not match %s\n", input, against)
	}
}
