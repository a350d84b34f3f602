package opgen_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/accessorpp/opgen"
	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestJennyListOperatorsFile(t *testing.T) {
	is := is.New(t)

	want, err := os.ReadFile(golden)
	is.NoErr(err)

	jl := opgen.JennyListWithNamer(func(c opgen.Category) string { return c.Name })
	jl.AppendManyToOne(opgen.OperatorsJenny{Path: "accessor_operators.h"})

	fl, err := jl.Generate(opgen.AccessorCategories())
	is.NoErr(err)
	is.Equal(len(fl), 1)
	is.Equal(fl[0].RelativePath, "accessor_operators.h")
	if diff := cmp.Diff(string(want), string(fl[0].Data)); diff != "" {
		t.Fatalf("OperatorsJenny output differs from %s (-want +got):\n%s", golden, diff)
	}
	is.Equal(len(fl[0].From), 2)
	is.Equal(fl[0].From[0].JennyName(), "JennyList[Category]")
	is.Equal(fl[0].From[1].JennyName(), "OperatorsJenny")
}

func TestJennyListCategoryFiles(t *testing.T) {
	is := is.New(t)

	jl := opgen.JennyListWithNamer(func(c opgen.Category) string { return c.Name })
	jl.AppendOneToOne(opgen.CategoryJenny{Dir: "ops", Ext: ".inc"})
	jl.AddPostprocessors(opgen.Prefix(opgen.Preamble))

	cats := opgen.AccessorCategories()
	fl, err := jl.Generate(cats)
	is.NoErr(err)
	is.Equal(len(fl), 3)
	is.Equal(fl[0].RelativePath, "ops/binary_assignment_operators.inc")
	is.Equal(fl[1].RelativePath, "ops/binary_operators.inc")
	is.Equal(fl[2].RelativePath, "ops/logic_operators.inc")

	var want bytes.Buffer
	want.WriteString(opgen.Preamble)
	is.NoErr(opgen.Emit(&want, cats[0]))
	is.Equal(string(fl[2].Data), want.String())
}

func TestJennyListEmpty(t *testing.T) {
	is := is.New(t)

	var jl opgen.JennyList[opgen.Category]
	gfs, err := jl.GenerateFS(opgen.AccessorCategories())
	is.NoErr(err)
	is.True(gfs == nil)

	jl.AppendManyToOne(opgen.OperatorsJenny{Path: "out.h"})
	fl, err := jl.Generate(nil)
	is.NoErr(err)
	is.Equal(len(fl), 0) // no categories, no file
}

func TestJennyListErrors(t *testing.T) {
	is := is.New(t)

	jl := opgen.JennyListWithNamer(func(c opgen.Category) string { return c.Name })
	jl.Append(failJenny{}, opgen.OperatorsJenny{Path: "out.h"}, opgen.CategoryJenny{})

	_, err := jl.GenerateFS(opgen.AccessorCategories())
	is.True(err != nil)
	is.True(errors.Is(err, errNoTemplate))
	is.True(strings.Contains(err.Error(), `failJenny: no template for input "Logic operators"`))
	is.True(strings.Contains(err.Error(), `for input "Binary assignment operators"`))
	// CategoryJenny and OperatorsJenny do not conflict on paths
	is.True(!strings.Contains(err.Error(), "cannot create"))
}

func TestJennyListPathConflict(t *testing.T) {
	is := is.New(t)

	jl := opgen.JennyListWithNamer(func(c opgen.Category) string { return c.Name })
	jl.AppendManyToOne(opgen.OperatorsJenny{Path: "logic_operators.h"})
	jl.AppendOneToOne(opgen.CategoryJenny{Ext: ".h"})

	_, err := jl.GenerateFS(opgen.AccessorCategories())
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "cannot create logic_operators.h"))
}

func TestJennyListAppendPanics(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.True(recover() != nil)
	}()
	var jl opgen.JennyList[opgen.Category]
	jl.Append(nameOnly{})
}

func TestAdaptJennies(t *testing.T) {
	is := is.New(t)

	byName := func(name string) opgen.Category {
		for _, c := range opgen.AccessorCategories() {
			if c.Name == name {
				return c
			}
		}
		return opgen.Category{}
	}

	jl := opgen.JennyListWithNamer(func(s string) string { return s })
	jl.AppendOneToOne(opgen.AdaptOneToOne[string, opgen.Category](opgen.CategoryJenny{Ext: ".h"}, byName))
	jl.AppendManyToOne(opgen.AdaptManyToOne[opgen.Category, string](opgen.OperatorsJenny{Path: "all.h"}, byName))

	fl, err := jl.Generate([]string{"Binary operators"})
	is.NoErr(err)
	is.Equal(len(fl), 2)
	is.Equal(fl[0].RelativePath, "all.h")
	is.Equal(fl[1].RelativePath, "binary_operators.h")
	is.Equal(string(fl[0].Data), string(fl[1].Data))
	is.Equal(fl[1].From[1].JennyName(), "CategoryJenny")
}

var errNoTemplate = errors.New("no template")

type failJenny struct{}

func (failJenny) JennyName() string { return "failJenny" }

func (failJenny) Generate(opgen.Category) (*opgen.File, error) {
	return nil, errNoTemplate
}

type nameOnly struct{}

func (nameOnly) JennyName() string { return "nameOnly" }
