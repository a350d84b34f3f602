package opgen

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// OpMarker is replaced with the operator itself.
	OpMarker = "{op}"
	// ReducedOpMarker is replaced with [Operator.Reduced].
	ReducedOpMarker = "{rop}"
)

// Template is the text of a single operator function, containing OpMarker
// and, for compound assignment operators, ReducedOpMarker.
type Template string

// Render substitutes op into the template. Every OpMarker is replaced first,
// then every ReducedOpMarker. Markers missing from the template are simply
// not substituted.
func (t Template) Render(op Operator) string {
	code := strings.ReplaceAll(string(t), OpMarker, string(op))
	return strings.ReplaceAll(code, ReducedOpMarker, string(op.Reduced()))
}

// Check reports markers the template is expected to carry but does not.
// Rendering never calls Check.
func (t Template) Check(reduced bool) error {
	var result *multierror.Error
	if !strings.Contains(string(t), OpMarker) {
		result = multierror.Append(result, fmt.Errorf("template has no %s marker", OpMarker))
	}
	if reduced && !strings.Contains(string(t), ReducedOpMarker) {
		result = multierror.Append(result, fmt.Errorf("template has no %s marker", ReducedOpMarker))
	}
	return result.ErrorOrNil()
}
