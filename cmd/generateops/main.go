// Command generateops prints the operator overloads of the accessorpp Accessor
// type. With no arguments it writes them to stdout, ready to be pasted into
// accessor.h.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/gookit/color"
)

const version = "v1.0.0"

var (
	colorSuccess = color.Green.Render
	colorFail    = color.Red.Render
	colorLabel   = color.Yellow.Render
)

func main() {
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&versionCmd{}, "")
	subcommands.Register(&genCmd{}, "")
	subcommands.Register(&checkCmd{}, "")

	log.SetFlags(0)
	log.SetPrefix("generateops: ")
	log.SetOutput(os.Stderr)

	allCmds := map[string]bool{
		"commands": true,
		"version":  true,
		"help":     true,
		"flags":    true,
		"gen":      true,
		"check":    true,
	}
	ctx := context.Background()
	if args := os.Args[1:]; len(args) == 0 || !allCmds[args[0]] {
		cmd := &genCmd{}
		f := flag.NewFlagSet("gen", flag.ExitOnError)
		cmd.SetFlags(f)
		_ = f.Parse(args)
		os.Exit(int(cmd.Execute(ctx, f)))
	}

	flag.Parse()
	os.Exit(int(subcommands.Execute(ctx)))
}

type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print the generateops version" }
func (*versionCmd) Usage() string            { return "version\n" }
func (*versionCmd) SetFlags(_ *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Println(version)
	return subcommands.ExitSuccess
}
