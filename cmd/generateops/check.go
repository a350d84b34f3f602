package main

import (
	"context"
	"flag"
	"log"

	"github.com/accessorpp/opgen"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "check the operator templates for missing markers"
}
func (*checkCmd) Usage() string {
	return `check
  Reports templates that lack the {op} marker, and assignment templates
  that lack the {rop} marker. gen never performs this check.
`
}
func (*checkCmd) SetFlags(_ *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return checkCategories(opgen.AccessorCategories())
}

func checkCategories(cats []opgen.Category) subcommands.ExitStatus {
	status := subcommands.ExitSuccess
	for _, c := range cats {
		if err := c.Validate(); err != nil {
			logErrors(err)
			status = subcommands.ExitFailure
			continue
		}
		log.Printf("%s: %s, %d operators\n", colorSuccess("ok"), c.Name, len(c.Operators))
	}
	return status
}
