package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/accessorpp/opgen"
	"github.com/google/subcommands"
)

type genCmd struct {
	out      string
	split    bool
	ext      string
	verify   bool
	preamble bool

	// stdout receives the generated text when out is empty. Defaults to os.Stdout.
	stdout io.Writer
}

func (*genCmd) Name() string { return "gen" }
func (*genCmd) Synopsis() string {
	return "generate the accessor operator overloads"
}
func (*genCmd) Usage() string {
	return `generateops [gen] [-out path] [-split] [-ext .h] [-verify] [-preamble]
  Generates the logic, binary and binary assignment operators of the
  accessorpp Accessor type. Without -out the text is written to stdout.
`
}

func (cmd *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.out, "out", "", "file to write to; with -split, the directory to write to")
	f.BoolVar(&cmd.split, "split", false, "write one file per operator category")
	f.StringVar(&cmd.ext, "ext", ".h", "file extension used with -split")
	f.BoolVar(&cmd.verify, "verify", false, "check that the files on disk are up to date instead of writing them")
	f.BoolVar(&cmd.preamble, "preamble", false, "prepend the note accessor.h carries above the generated operators")
}

func (cmd *genCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cats := opgen.AccessorCategories()

	if cmd.out == "" {
		if cmd.split || cmd.verify {
			log.Println(colorFail("-split and -verify require -out"))
			return subcommands.ExitUsageError
		}
		return cmd.emit(cats)
	}

	jl := opgen.JennyListWithNamer(func(c opgen.Category) string {
		return c.Name
	})
	var prefix string
	if cmd.split {
		prefix = cmd.out
		jl.AppendOneToOne(opgen.CategoryJenny{Ext: cmd.ext})
	} else {
		prefix = filepath.Dir(cmd.out)
		jl.AppendManyToOne(opgen.OperatorsJenny{Path: filepath.Base(cmd.out)})
	}
	if cmd.preamble {
		jl.AddPostprocessors(opgen.Prefix(opgen.Preamble))
	}

	gfs, err := jl.GenerateFS(cats)
	if err != nil {
		logErrors(err)
		return subcommands.ExitFailure
	}

	if cmd.verify {
		if err := gfs.Verify(ctx, prefix); err != nil {
			logErrors(err)
			log.Printf("%s: run generateops without -verify to regenerate\n", colorFail("stale"))
			return subcommands.ExitFailure
		}
		log.Printf("%s: %d file(s) up to date\n", colorSuccess("ok"), gfs.Len())
		return subcommands.ExitSuccess
	}

	if err := gfs.Write(ctx, prefix); err != nil {
		logErrors(err)
		return subcommands.ExitFailure
	}
	for _, f := range gfs.AsFiles() {
		log.Printf("%s: %s\n", colorLabel("wrote"), filepath.Join(prefix, f.RelativePath))
	}
	return subcommands.ExitSuccess
}

func (cmd *genCmd) emit(cats []opgen.Category) subcommands.ExitStatus {
	w := cmd.stdout
	if w == nil {
		w = os.Stdout
	}
	if cmd.preamble {
		if _, err := io.WriteString(w, opgen.Preamble); err != nil {
			logErrors(err)
			return subcommands.ExitFailure
		}
	}
	if err := opgen.Emit(w, cats...); err != nil {
		logErrors(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func logErrors(err error) {
	log.Println(strings.Replace(err.Error(), "\n", "\n\t", -1))
}
