package opgen

import "strings"

// Operator is a single C++ operator token, such as "==", "+" or "<<=".
type Operator string

// Reduced returns the operator with every '=' character removed, so "+="
// becomes "+" and "<<=" becomes "<<".
//
// The removal is purely textual. "==" reduces to "", so Reduced is only
// meaningful for compound assignment operators.
func (o Operator) Reduced() Operator {
	return Operator(strings.ReplaceAll(string(o), "=", ""))
}

func (o Operator) String() string {
	return string(o)
}
