package opgen

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// Category is an ordered list of operators that share one Template.
type Category struct {
	// Name is the text of the banner comment printed before the category.
	Name string

	Operators []Operator
	Template  Template

	// Assign marks compound assignment categories, whose Template must also
	// carry ReducedOpMarker.
	Assign bool
}

// Banner returns the comment line emitted before the category's units.
func (c Category) Banner() string {
	return "// " + c.Name + "\n"
}

// Slug returns a file-name friendly form of the category name.
func (c Category) Slug() string {
	return strcase.ToSnake(c.Name)
}

// Validate checks the category's template for missing markers.
func (c Category) Validate() error {
	if err := c.Template.Check(c.Assign); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}
