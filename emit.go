package opgen

import (
	"fmt"
	"io"
)

// EmitUnits renders t once per operator, in order, writing each result to w
// as soon as it is produced. Nothing is written between units beyond what the
// template itself contains.
func EmitUnits(w io.Writer, ops []Operator, t Template) error {
	for _, op := range ops {
		if _, err := io.WriteString(w, t.Render(op)); err != nil {
			return fmt.Errorf("writing operator %s: %w", op, err)
		}
	}
	return nil
}

// Emit writes each category's banner followed by its units.
func Emit(w io.Writer, cats ...Category) error {
	for _, c := range cats {
		if _, err := io.WriteString(w, c.Banner()); err != nil {
			return fmt.Errorf("writing %s banner: %w", c.Name, err)
		}
		if err := EmitUnits(w, c.Operators, c.Template); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return nil
}
