package opgen

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestReduced(t *testing.T) {
	is := is.New(t)

	tests := map[Operator]Operator{
		"+=":  "+",
		"%=":  "%",
		"<<=": "<<",
		">>=": ">>",
		"^=":  "^",
		"+":   "+",
		"==":  "",
		"<=":  "<",
	}
	for in, want := range tests {
		is.Equal(in.Reduced(), want) // Reduced strips every '='
	}
}

func TestRenderEquals(t *testing.T) {
	is := is.New(t)

	unit := LogicTemplate.Render("==")
	is.True(strings.Contains(unit, "auto operator == ("))
	is.True(strings.Contains(unit, "(a) == (typename AccessorValueType<U>::Type)(b);"))
	is.Equal(strings.Count(unit, "=="), 2)
	is.True(!strings.Contains(unit, OpMarker))
}

func TestRenderShiftAssign(t *testing.T) {
	is := is.New(t)

	unit := BinaryAssignTemplate.Render("<<=")
	is.True(strings.Contains(unit, "auto operator <<= (T & a, const U & b)"))
	is.True(strings.Contains(unit, "a = (typename AccessorValueType<T>::Type)(a) << (typename AccessorValueType<U>::Type)(b);"))
	is.True(!strings.Contains(unit, "(a) <<= ("))
	is.True(strings.HasSuffix(unit, "\treturn a;\n}\n"))
}

func TestRenderMissingMarkers(t *testing.T) {
	is := is.New(t)

	is.Equal(Template("no markers\n").Render("+="), "no markers\n")
	is.Equal(Template("{op}|{rop}|{op}").Render("|="), "|=||||=")
}

func TestTemplateCheck(t *testing.T) {
	is := is.New(t)

	is.NoErr(LogicTemplate.Check(false))
	is.NoErr(BinaryAssignTemplate.Check(true))

	err := BinaryTemplate.Check(true)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "no {rop} marker"))

	err = Template("nothing").Check(true)
	is.True(strings.Contains(err.Error(), "no {op} marker"))
	is.True(strings.Contains(err.Error(), "no {rop} marker"))
}

func TestCategoryValidate(t *testing.T) {
	is := is.New(t)

	for _, c := range AccessorCategories() {
		is.NoErr(c.Validate())
	}

	broken := Category{Name: "Broken operators", Operators: []Operator{"+="}, Template: BinaryTemplate, Assign: true}
	err := broken.Validate()
	is.True(strings.HasPrefix(err.Error(), "Broken operators: "))
}

func TestCategorySlug(t *testing.T) {
	is := is.New(t)

	cats := AccessorCategories()
	is.Equal(cats[0].Slug(), "logic_operators")
	is.Equal(cats[1].Slug(), "binary_operators")
	is.Equal(cats[2].Slug(), "binary_assignment_operators")
	is.Equal(cats[2].Banner(), "// Binary assignment operators\n")
}
