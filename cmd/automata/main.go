package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"automata/internal/config"
)

// Context is handed to every command's Run method.
type Context struct {
	Config  *config.Config
	Verbose bool
	In      io.Reader
	Out     io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config  string `help:"Configuration file path" default:"automata.yaml" env:"AUTOMATA_CONFIG" type:"path"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	NoColor bool   `help:"Disable colored output"`

	Match   MatchCmd   `cmd:"" help:"Match strings against a binary pattern"`
	Repl    ReplCmd    `cmd:"" help:"Interactively enter patterns and strings"`
	Postfix PostfixCmd `cmd:"" help:"Print the postfix form of a pattern"`
	Dot     DotCmd     `cmd:"" help:"Export the Thompson NFA of a pattern as Graphviz"`
	DFA     DFACmd     `cmd:"" name:"dfa" help:"Simulate a DFA description file"`
	NFA     NFACmd     `cmd:"" name:"nfa" help:"Simulate an NFA description file"`
	Check   CheckCmd   `cmd:"" help:"Check words against a password policy"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "automata v0.1.0")
	return nil
}

// run parses args and executes the selected command. It returns the
// process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("automata"),
		kong.Description("Binary regular expressions and finite automata."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if cli.NoColor || !cfg.ColorEnabled() {
		color.NoColor = true
	}

	appCtx := &Context{Config: cfg, Verbose: cli.Verbose, In: stdin, Out: stdout}
	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		log.Fatal(err)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
